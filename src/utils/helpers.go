package utils

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"chb/src/config"
	"chb/src/models"
	"chb/src/store"
	"chb/src/types"
	"chb/src/validate"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// The three optional multipart slots of a booking submission.
var uploadSlots = []string{"id_document", "driving_license", "deposit_proof"}

var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// CreateNewBooking validates the submission, persists any uploaded documents,
// and appends the record to the store. It returns field errors for a 400, or
// an internal error for a 500; exactly one of the three results is set.
func CreateNewBooking(ctx *gin.Context, body *types.CreateBookingRequestBody) (*models.BookingRecord, []types.FieldError, error) {
	record, errs := validate.Booking(body)

	uploads := map[string]*multipart.FileHeader{}
	for _, slot := range uploadSlots {
		file, err := ctx.FormFile(slot)
		if err != nil {
			continue
		}
		if ferr := checkUpload(slot, file); ferr != nil {
			errs = append(errs, *ferr)
			continue
		}
		uploads[slot] = file
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	now := time.Now()
	record.ID = models.NewBookingID(now)
	record.CreatedAt = now

	for slot, file := range uploads {
		dest, err := saveUpload(ctx, record.ID, slot, file)
		if err != nil {
			log.Printf("Could not save upload %s for %s: %s\n", slot, record.ID, err.Error())
			return nil, nil, err
		}
		switch slot {
		case "id_document":
			record.IDDocumentPath = dest
		case "driving_license":
			record.DrivingLicensePath = dest
		case "deposit_proof":
			record.DepositProofPath = dest
		}
	}

	if err := store.GetStore().CreateBooking(record); err != nil {
		return nil, nil, err
	}
	return record, nil, nil
}

// CreateNewInquiry validates a contact submission and appends it to the store.
func CreateNewInquiry(body *types.CreateInquiryRequestBody) (*models.ContactInquiry, []types.FieldError, error) {
	inquiry, errs := validate.Inquiry(body)
	if len(errs) > 0 {
		return nil, errs, nil
	}
	now := time.Now()
	inquiry.ID = models.NewInquiryID(now)
	inquiry.CreatedAt = now
	if err := store.GetStore().CreateInquiry(inquiry); err != nil {
		return nil, nil, err
	}
	return inquiry, nil, nil
}

func checkUpload(slot string, file *multipart.FileHeader) *types.FieldError {
	contentType := file.Header.Get("Content-Type")
	if _, ok := allowedUploadTypes[contentType]; !ok {
		return &types.FieldError{Field: slot, Message: "file must be an image or a PDF"}
	}
	if file.Size > config.MAX_UPLOAD_SIZE {
		return &types.FieldError{Field: slot, Message: "file exceeds the 10 MB limit"}
	}
	return nil
}

func saveUpload(ctx *gin.Context, bookingID, slot string, file *multipart.FileHeader) (string, error) {
	dir := config.GetUploadsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	name := fmt.Sprintf("%s_%s_%s%s", bookingID, slot, slug.Make(base), ext)
	dest := filepath.Join(dir, name)
	if err := ctx.SaveUploadedFile(file, dest); err != nil {
		return "", err
	}
	return dest, nil
}
