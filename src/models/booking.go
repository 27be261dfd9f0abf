package models

import (
	"fmt"
	"time"

	"chb/src/types"
)

// BookingRecord is immutable once stored; only the contact inquiry status-update
// path mutates records in this system, and that path never touches bookings.
type BookingRecord struct {
	ID              string               `json:"id"`
	CustomerName    string               `json:"customer_name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	IDNumber        string               `json:"id_number"`
	IDType          types.IDDocumentKind `json:"id_type"`
	CarType         string               `json:"car_type"`
	PickupDate      time.Time            `json:"pickup_date"`
	ReturnDate      time.Time            `json:"return_date"`
	PickupLocation  string               `json:"pickup_location"`
	DropoffLocation string               `json:"dropoff_location,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	TermsAccepted   bool                 `json:"terms_accepted"`

	// Filesystem paths of stored uploads, set only when the part was present.
	IDDocumentPath     string `json:"-"`
	DrivingLicensePath string `json:"-"`
	DepositProofPath   string `json:"-"`

	Status    types.BookingStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewBookingID derives the reference from the last 8 digits of the millisecond
// timestamp. Uniqueness is probabilistic; the store rejects the rare collision.
func NewBookingID(now time.Time) string {
	return fmt.Sprintf("V1-%08d", now.UnixMilli()%100000000)
}

// DocumentPaths lists the candidate attachment slots in display order.
func (b *BookingRecord) DocumentPaths() []string {
	return []string{b.IDDocumentPath, b.DrivingLicensePath, b.DepositProofPath}
}

func (b *BookingRecord) HasDocuments() map[string]bool {
	return map[string]bool{
		"id_document":     b.IDDocumentPath != "",
		"driving_license": b.DrivingLicensePath != "",
		"deposit_proof":   b.DepositProofPath != "",
	}
}

func (b *BookingRecord) ToAPIResponse() *types.APIResponseBooking {
	return &types.APIResponseBooking{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		Email:           b.Email,
		Phone:           b.Phone,
		CarType:         b.CarType,
		PickupDate:      b.PickupDate.Format("2006-01-02"),
		ReturnDate:      b.ReturnDate.Format("2006-01-02"),
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		Status:          b.Status,
		HasDocuments:    b.HasDocuments(),
		CreatedAt:       b.CreatedAt,
	}
}
