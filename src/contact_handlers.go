package main

import (
	"fmt"
	"log"
	"net/http"

	"chb/src/common"
	"chb/src/store"
	"chb/src/types"
	"chb/src/utils"
	"chb/src/worker"

	"github.com/gin-gonic/gin"
)

func contactHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/contact", func(ctx *gin.Context) {
			var body types.CreateInquiryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			inquiry, fieldErrs, err := utils.CreateNewInquiry(&body)
			if len(fieldErrs) > 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
				return
			}
			if err != nil {
				log.Printf("Could not complete contact request: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error while processing request"})
				return
			}

			// Deferred-response variant: acknowledge before the notification
			// attempt so a mail outage never shows up on this endpoint.
			ctx.JSON(http.StatusCreated, gin.H{"data": inquiry.ToAPIResponse()})

			worker.GetQueue().Enqueue(worker.Task{
				Name: fmt.Sprintf("inquiry_%s_notifications", inquiry.ID),
				Run: func() error {
					return common.DispatchInquiryNotifications(inquiry)
				},
			})
		})
	return g
}

func adminContactHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/contact/inquiries", func(ctx *gin.Context) {
			var filters types.InquiryQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			inquiries := store.GetStore().ListInquiries(&filters)
			data := make([]*types.APIResponseInquiry, 0, len(inquiries))
			for _, inquiry := range inquiries {
				data = append(data, inquiry.ToAPIResponse())
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/contact/stats", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"data": store.GetStore().InquiryStats()})
		}).
		PATCH("/contact/inquiries/:id/status", func(ctx *gin.Context) {
			var params types.SimpleIDParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateInquiryStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			status, ok := types.ParseInquiryStatus(body.Status)
			if !ok {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: new, in_progress, resolved, archived"})
				return
			}
			inquiry, ok := store.GetStore().UpdateInquiryStatus(params.ID, status)
			if !ok {
				ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no inquiry found for id %s", params.ID)})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": inquiry.ToAPIResponse()})
		})
	return g
}
