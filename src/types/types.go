package types

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type BookingStatus string

const (
	BOOKING_CONFIRMED BookingStatus = "confirmed"
)

type IDDocumentKind string

const (
	ID_DOCUMENT_GENERIC  IDDocumentKind = "id"
	ID_DOCUMENT_PASSPORT IDDocumentKind = "passport"
	ID_DOCUMENT_NATIONAL IDDocumentKind = "national_id"
)

func ParseIDDocumentKind(s string) (IDDocumentKind, bool) {
	switch IDDocumentKind(s) {
	case ID_DOCUMENT_GENERIC, ID_DOCUMENT_PASSPORT, ID_DOCUMENT_NATIONAL:
		return IDDocumentKind(s), true
	}
	return "", false
}

type Department string

const (
	DEPARTMENT_GENERAL   Department = "general"
	DEPARTMENT_BOOKING   Department = "booking"
	DEPARTMENT_CORPORATE Department = "corporate"
	DEPARTMENT_SUPPORT   Department = "support"
)

func ParseDepartment(s string) (Department, bool) {
	switch Department(s) {
	case DEPARTMENT_GENERAL, DEPARTMENT_BOOKING, DEPARTMENT_CORPORATE, DEPARTMENT_SUPPORT:
		return Department(s), true
	}
	return "", false
}

// AssigneeFor is total over Department.
func AssigneeFor(d Department) string {
	switch d {
	case DEPARTMENT_BOOKING:
		return "Reservations Team"
	case DEPARTMENT_CORPORATE:
		return "Corporate Accounts Team"
	case DEPARTMENT_SUPPORT:
		return "Roadside Support Team"
	default:
		return "Customer Care Team"
	}
}

type Priority string

const (
	PRIORITY_URGENT Priority = "urgent"
	PRIORITY_HIGH   Priority = "high"
	PRIORITY_NORMAL Priority = "normal"
	PRIORITY_LOW    Priority = "low"
)

func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PRIORITY_URGENT, PRIORITY_HIGH, PRIORITY_NORMAL, PRIORITY_LOW:
		return Priority(s), true
	}
	return "", false
}

// PriorityRank orders urgent < high < normal < low for sorting.
func PriorityRank(p Priority) int {
	switch p {
	case PRIORITY_URGENT:
		return 0
	case PRIORITY_HIGH:
		return 1
	case PRIORITY_NORMAL:
		return 2
	default:
		return 3
	}
}

var urgentKeywords = []string{"urgent", "emergency", "accident", "breakdown", "stranded", "asap"}

// DerivePriority applies the keyword match over subject+message first, then the
// department overrides: support always escalates to urgent, corporate to at least high.
func DerivePriority(department Department, subject, message string) Priority {
	if department == DEPARTMENT_SUPPORT {
		return PRIORITY_URGENT
	}
	haystack := strings.ToLower(subject + " " + message)
	for _, kw := range urgentKeywords {
		if strings.Contains(haystack, kw) {
			return PRIORITY_URGENT
		}
	}
	if department == DEPARTMENT_CORPORATE {
		return PRIORITY_HIGH
	}
	return PRIORITY_NORMAL
}

func ResponseTimeFor(p Priority) string {
	switch p {
	case PRIORITY_URGENT:
		return "within 1 hour"
	case PRIORITY_HIGH:
		return "within 4 hours"
	case PRIORITY_NORMAL:
		return "within 24 hours"
	default:
		return "within 48 hours"
	}
}

type InquiryStatus string

const (
	INQUIRY_NEW         InquiryStatus = "new"
	INQUIRY_IN_PROGRESS InquiryStatus = "in_progress"
	INQUIRY_RESOLVED    InquiryStatus = "resolved"
	INQUIRY_ARCHIVED    InquiryStatus = "archived"
)

func ParseInquiryStatus(s string) (InquiryStatus, bool) {
	switch InquiryStatus(s) {
	case INQUIRY_NEW, INQUIRY_IN_PROGRESS, INQUIRY_RESOLVED, INQUIRY_ARCHIVED:
		return InquiryStatus(s), true
	}
	return "", false
}

// CreateBookingRequestBody carries the form/JSON fields of a booking submission.
// Shape checks live in the binding tags; the full collect-all validation with
// per-field messages happens in the validate package.
type CreateBookingRequestBody struct {
	CustomerName    string `json:"customer_name" form:"customer_name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	CarType         string `json:"car_type" form:"car_type"`
	PickupDate      string `json:"pickup_date" form:"pickup_date"`
	ReturnDate      string `json:"return_date" form:"return_date"`
	PickupLocation  string `json:"pickup_location" form:"pickup_location"`
	DropoffLocation string `json:"dropoff_location,omitempty" form:"dropoff_location"`
	Notes           string `json:"notes,omitempty" form:"notes"`
	IDNumber        string `json:"id_number" form:"id_number"`
	IDType          string `json:"id_type" form:"id_type"`
	TermsAccepted   any    `json:"terms_accepted" form:"terms_accepted"`
}

type SendConfirmationRequestBody struct {
	BookingID string `json:"booking_id" binding:"required"`
}

type CreateInquiryRequestBody struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Department string `json:"department"`
}

type UpdateInquiryStatusRequestBody struct {
	Status string `json:"status" binding:"required"`
}

type InquiryQueryFilters struct {
	Department string `form:"department" binding:"omitempty,department"`
	Status     string `form:"status" binding:"omitempty,inquirystatus"`
	Priority   string `form:"priority" binding:"omitempty,prioritylevel"`
	Limit      int    `form:"limit" binding:"omitempty,min=1"`
}

type SimpleIDParams struct {
	ID string `uri:"id" binding:"required"`
}

// FieldError tags one validation violation with the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type APIResponseBooking struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	CarType         string          `json:"car_type"`
	PickupDate      string          `json:"pickup_date"`
	ReturnDate      string          `json:"return_date"`
	PickupLocation  string          `json:"pickup_location"`
	DropoffLocation string          `json:"dropoff_location,omitempty"`
	Status          BookingStatus   `json:"status"`
	HasDocuments    map[string]bool `json:"has_documents"`
	CreatedAt       time.Time       `json:"created_at"`
}

type APIResponseInquiry struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	Subject           string        `json:"subject"`
	Department        Department    `json:"department"`
	Priority          Priority      `json:"priority"`
	Assignee          string        `json:"assignee"`
	Status            InquiryStatus `json:"status"`
	EstimatedResponse string        `json:"estimated_response_time"`
	CreatedAt         time.Time     `json:"created_at"`
}

type InquiryStats struct {
	Total        int                   `json:"total"`
	ByStatus     map[InquiryStatus]int `json:"by_status"`
	ByDepartment map[Department]int    `json:"by_department"`
	ByPriority   map[Priority]int      `json:"by_priority"`
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
