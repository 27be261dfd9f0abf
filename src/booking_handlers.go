package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"chb/src/common"
	"chb/src/store"
	"chb/src/types"
	"chb/src/utils"
	"chb/src/worker"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			body, err := bindBookingRequest(ctx)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			record, fieldErrs, err := utils.CreateNewBooking(ctx, body)
			if len(fieldErrs) > 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
				return
			}
			if err != nil {
				log.Printf("Could not complete booking request: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error while processing request"})
				return
			}

			// Respond first; the packaging/rendering/notification phase never
			// blocks the client.
			ctx.JSON(http.StatusCreated, gin.H{"data": record.ToAPIResponse()})

			worker.GetQueue().Enqueue(worker.Task{
				Name: fmt.Sprintf("booking_%s_notifications", record.ID),
				Run: func() error {
					return common.DispatchBookingNotifications(record)
				},
			})
		}).
		POST("/bookings/send-confirmation", func(ctx *gin.Context) {
			var body types.SendConfirmationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			record, ok := store.GetStore().GetBooking(body.BookingID)
			if !ok {
				ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no booking found for id %s", body.BookingID)})
				return
			}
			if err := common.ResendConfirmation(record); err != nil {
				log.Printf("Could not resend confirmation for %s: %s\n", record.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error while sending confirmation"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "confirmation sent", "booking_id": record.ID})
		})
	return g
}

func adminBookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleIDParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			record, ok := store.GetStore().GetBooking(params.ID)
			if !ok {
				ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no booking found for id %s", params.ID)})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": record.ToAPIResponse()})
		})
	return g
}

// bindBookingRequest accepts both multipart form submissions (with optional
// file parts) and plain JSON bodies.
func bindBookingRequest(ctx *gin.Context) (*types.CreateBookingRequestBody, error) {
	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		body := &types.CreateBookingRequestBody{
			CustomerName:    ctx.PostForm("customer_name"),
			Email:           ctx.PostForm("email"),
			Phone:           ctx.PostForm("phone"),
			CarType:         ctx.PostForm("car_type"),
			PickupDate:      ctx.PostForm("pickup_date"),
			ReturnDate:      ctx.PostForm("return_date"),
			PickupLocation:  ctx.PostForm("pickup_location"),
			DropoffLocation: ctx.PostForm("dropoff_location"),
			Notes:           ctx.PostForm("notes"),
			IDNumber:        ctx.PostForm("id_number"),
			IDType:          ctx.PostForm("id_type"),
			TermsAccepted:   ctx.PostForm("terms_accepted"),
		}
		return body, nil
	}
	var body types.CreateBookingRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, err
	}
	return &body, nil
}
