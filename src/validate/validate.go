package validate

import (
	"regexp"
	"strings"
	"time"

	"chb/src/config"
	"chb/src/models"
	"chb/src/types"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Booking checks a raw submission and returns either a normalized record shape
// or every violation found, so a client can fix all problems in one round trip.
// Pure function of its input.
func Booking(body *types.CreateBookingRequestBody) (*models.BookingRecord, []types.FieldError) {
	errs := make([]types.FieldError, 0)

	name := strings.TrimSpace(body.CustomerName)
	if name == "" {
		errs = append(errs, types.FieldError{Field: "customer_name", Message: "customer name is required"})
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" {
		errs = append(errs, types.FieldError{Field: "email", Message: "email is required"})
	} else if !emailRe.MatchString(email) {
		errs = append(errs, types.FieldError{Field: "email", Message: "email is not a valid address"})
	}
	phone := strings.TrimSpace(body.Phone)
	if phone == "" {
		errs = append(errs, types.FieldError{Field: "phone", Message: "phone is required"})
	}
	carType := strings.TrimSpace(body.CarType)
	if carType == "" {
		errs = append(errs, types.FieldError{Field: "car_type", Message: "car type is required"})
	}
	pickupLocation := strings.TrimSpace(body.PickupLocation)
	if pickupLocation == "" {
		errs = append(errs, types.FieldError{Field: "pickup_location", Message: "pickup location is required"})
	}
	idNumber := strings.TrimSpace(body.IDNumber)
	if idNumber == "" {
		errs = append(errs, types.FieldError{Field: "id_number", Message: "identity document number is required"})
	}

	var idType types.IDDocumentKind
	rawIDType := strings.TrimSpace(body.IDType)
	if rawIDType == "" {
		errs = append(errs, types.FieldError{Field: "id_type", Message: "identity document type is required"})
	} else {
		kind, ok := types.ParseIDDocumentKind(rawIDType)
		if !ok {
			errs = append(errs, types.FieldError{Field: "id_type", Message: "identity document type must be one of: id, passport, national_id"})
		}
		idType = kind
	}

	var pickupDate, returnDate time.Time
	pickupValid := false
	rawPickup := strings.TrimSpace(body.PickupDate)
	if rawPickup == "" {
		errs = append(errs, types.FieldError{Field: "pickup_date", Message: "pickup date is required"})
	} else {
		d, err := time.Parse(config.DATE_PARSE_FORMAT, rawPickup)
		if err != nil {
			errs = append(errs, types.FieldError{Field: "pickup_date", Message: "pickup date is not a valid date"})
		} else {
			pickupDate = d
			pickupValid = true
		}
	}
	rawReturn := strings.TrimSpace(body.ReturnDate)
	if rawReturn == "" {
		errs = append(errs, types.FieldError{Field: "return_date", Message: "return date is required"})
	} else {
		d, err := time.Parse(config.DATE_PARSE_FORMAT, rawReturn)
		if err != nil {
			errs = append(errs, types.FieldError{Field: "return_date", Message: "return date is not a valid date"})
		} else {
			returnDate = d
			if pickupValid && !returnDate.After(pickupDate) {
				errs = append(errs, types.FieldError{Field: "return_date", Message: "return date must be after pickup date"})
			}
		}
	}

	if !coerceConsent(body.TermsAccepted) {
		errs = append(errs, types.FieldError{Field: "terms_accepted", Message: "terms and conditions must be accepted"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	record := &models.BookingRecord{
		CustomerName:    name,
		Email:           email,
		Phone:           phone,
		IDNumber:        idNumber,
		IDType:          idType,
		CarType:         carType,
		PickupDate:      pickupDate,
		ReturnDate:      returnDate,
		PickupLocation:  pickupLocation,
		DropoffLocation: strings.TrimSpace(body.DropoffLocation),
		Notes:           strings.TrimSpace(body.Notes),
		TermsAccepted:   true,
		Status:          types.BOOKING_CONFIRMED,
	}
	return record, nil
}

// Inquiry validates a contact submission the same way: all violations at once.
func Inquiry(body *types.CreateInquiryRequestBody) (*models.ContactInquiry, []types.FieldError) {
	errs := make([]types.FieldError, 0)

	name := strings.TrimSpace(body.Name)
	if name == "" {
		errs = append(errs, types.FieldError{Field: "name", Message: "name is required"})
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" {
		errs = append(errs, types.FieldError{Field: "email", Message: "email is required"})
	} else if !emailRe.MatchString(email) {
		errs = append(errs, types.FieldError{Field: "email", Message: "email is not a valid address"})
	}
	subject := strings.TrimSpace(body.Subject)
	if subject == "" {
		errs = append(errs, types.FieldError{Field: "subject", Message: "subject is required"})
	}
	message := strings.TrimSpace(body.Message)
	if message == "" {
		errs = append(errs, types.FieldError{Field: "message", Message: "message is required"})
	}

	var department types.Department
	rawDepartment := strings.TrimSpace(body.Department)
	if rawDepartment == "" {
		errs = append(errs, types.FieldError{Field: "department", Message: "department is required"})
	} else {
		d, ok := types.ParseDepartment(rawDepartment)
		if !ok {
			errs = append(errs, types.FieldError{Field: "department", Message: "department must be one of: general, booking, corporate, support"})
		}
		department = d
	}

	if len(errs) > 0 {
		return nil, errs
	}

	priority := types.DerivePriority(department, subject, message)
	inquiry := &models.ContactInquiry{
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(body.Phone),
		Company:    strings.TrimSpace(body.Company),
		Subject:    subject,
		Message:    message,
		Department: department,
		Priority:   priority,
		Assignee:   types.AssigneeFor(department),
		Status:     types.INQUIRY_NEW,
	}
	return inquiry, nil
}

// coerceConsent accepts a boolean true or the literal string "true". Everything
// else, including absence, counts as not accepted.
func coerceConsent(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.TrimSpace(t) == "true"
	}
	return false
}
