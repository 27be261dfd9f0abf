package lib

import (
	"testing"
	"time"

	"chb/src/models"
	"chb/src/types"

	"github.com/stretchr/testify/assert"
)

func confirmationRecord() *models.BookingRecord {
	return &models.BookingRecord{
		ID:             "V1-00000042",
		CustomerName:   "Jane Driver",
		Email:          "jane@example.com",
		Phone:          "+15550100",
		IDNumber:       "AB123456",
		IDType:         types.ID_DOCUMENT_PASSPORT,
		CarType:        "SUV",
		PickupDate:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		PickupLocation: "Downtown Branch",
		Notes:          "late arrival",
		TermsAccepted:  true,
		Status:         types.BOOKING_CONFIRMED,
		CreatedAt:      time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestRenderConfirmationPDFIsDeterministic(t *testing.T) {
	record := confirmationRecord()
	now := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)

	first, err := RenderConfirmationPDF(record, now)
	assert.Nil(t, err)
	second, err := RenderConfirmationPDF(record, now)
	assert.Nil(t, err)

	assert.Equal(t, first, second)
	assert.Greater(t, len(first), 1000)
	assert.Equal(t, "%PDF", string(first[:4]))
}

func TestRenderConfirmationPDFHandlesMissingFields(t *testing.T) {
	record := &models.BookingRecord{ID: "V1-00000001"}

	out, err := RenderConfirmationPDF(record, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, err)
	assert.NotEmpty(t, out)
}
