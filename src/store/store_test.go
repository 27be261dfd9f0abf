package store

import (
	"fmt"
	"testing"
	"time"

	"chb/src/models"
	"chb/src/types"

	"github.com/stretchr/testify/assert"
)

func newInquiry(id string, dept types.Department, priority types.Priority, createdAt time.Time) *models.ContactInquiry {
	return &models.ContactInquiry{
		ID:         id,
		Name:       "Test",
		Email:      "test@example.com",
		Subject:    "subject",
		Message:    "message",
		Department: dept,
		Priority:   priority,
		Assignee:   types.AssigneeFor(dept),
		Status:     types.INQUIRY_NEW,
		CreatedAt:  createdAt,
	}
}

func TestGetStoreReturnsSharedInstance(t *testing.T) {
	NewStore(&Store{})
	first := GetStore()
	second := GetStore()
	assert.Same(t, first, second)

	assert.Nil(t, first.CreateBooking(&models.BookingRecord{ID: "V1-00000001"}))
	assert.Equal(t, 1, second.CountBookings())
}

func TestBookingRoundTrip(t *testing.T) {
	s := &Store{}
	b := &models.BookingRecord{ID: "V1-00000001", CustomerName: "Jane"}

	assert.Nil(t, s.CreateBooking(b))
	assert.Equal(t, 1, s.CountBookings())

	got, ok := s.GetBooking("V1-00000001")
	assert.True(t, ok)
	assert.Equal(t, "Jane", got.CustomerName)

	_, ok = s.GetBooking("V1-00000002")
	assert.False(t, ok)
}

func TestDuplicateIDsAreRejected(t *testing.T) {
	s := &Store{}
	assert.Nil(t, s.CreateBooking(&models.BookingRecord{ID: "V1-00000001"}))
	assert.NotNil(t, s.CreateBooking(&models.BookingRecord{ID: "V1-00000001"}))
	assert.Equal(t, 1, s.CountBookings())

	assert.Nil(t, s.CreateInquiry(newInquiry("INQ-1", types.DEPARTMENT_GENERAL, types.PRIORITY_NORMAL, time.Now())))
	assert.NotNil(t, s.CreateInquiry(newInquiry("INQ-1", types.DEPARTMENT_GENERAL, types.PRIORITY_NORMAL, time.Now())))
}

func TestUpdateInquiryStatus(t *testing.T) {
	s := &Store{}
	assert.Nil(t, s.CreateInquiry(newInquiry("INQ-1", types.DEPARTMENT_SUPPORT, types.PRIORITY_URGENT, time.Now())))

	updated, ok := s.UpdateInquiryStatus("INQ-1", types.INQUIRY_RESOLVED)
	assert.True(t, ok)
	assert.Equal(t, types.INQUIRY_RESOLVED, updated.Status)

	got, _ := s.GetInquiry("INQ-1")
	assert.Equal(t, types.INQUIRY_RESOLVED, got.Status)

	_, ok = s.UpdateInquiryStatus("INQ-2", types.INQUIRY_RESOLVED)
	assert.False(t, ok)
}

func TestListInquiriesSortsByPriorityThenRecency(t *testing.T) {
	s := &Store{}
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.CreateInquiry(newInquiry("INQ-low", types.DEPARTMENT_GENERAL, types.PRIORITY_LOW, base))
	s.CreateInquiry(newInquiry("INQ-urgent-old", types.DEPARTMENT_SUPPORT, types.PRIORITY_URGENT, base.Add(1*time.Minute)))
	s.CreateInquiry(newInquiry("INQ-normal", types.DEPARTMENT_GENERAL, types.PRIORITY_NORMAL, base.Add(2*time.Minute)))
	s.CreateInquiry(newInquiry("INQ-urgent-new", types.DEPARTMENT_SUPPORT, types.PRIORITY_URGENT, base.Add(3*time.Minute)))

	results := s.ListInquiries(&types.InquiryQueryFilters{})
	ids := make([]string, 0, len(results))
	for _, i := range results {
		ids = append(ids, i.ID)
	}
	assert.Equal(t, []string{"INQ-urgent-new", "INQ-urgent-old", "INQ-normal", "INQ-low"}, ids)
}

func TestListInquiriesFiltersAndLimits(t *testing.T) {
	s := &Store{}
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	for n := 0; n < 5; n++ {
		s.CreateInquiry(newInquiry(fmt.Sprintf("INQ-g-%d", n), types.DEPARTMENT_GENERAL, types.PRIORITY_NORMAL, base.Add(time.Duration(n)*time.Minute)))
	}
	s.CreateInquiry(newInquiry("INQ-support", types.DEPARTMENT_SUPPORT, types.PRIORITY_URGENT, base))
	s.UpdateInquiryStatus("INQ-g-0", types.INQUIRY_RESOLVED)

	byDept := s.ListInquiries(&types.InquiryQueryFilters{Department: "support"})
	assert.Len(t, byDept, 1)
	assert.Equal(t, "INQ-support", byDept[0].ID)

	byStatus := s.ListInquiries(&types.InquiryQueryFilters{Status: "resolved"})
	assert.Len(t, byStatus, 1)

	byPriority := s.ListInquiries(&types.InquiryQueryFilters{Priority: "normal"})
	assert.Len(t, byPriority, 5)

	limited := s.ListInquiries(&types.InquiryQueryFilters{Limit: 3})
	assert.Len(t, limited, 3)
	assert.Equal(t, "INQ-support", limited[0].ID)
}

func TestInquiryStats(t *testing.T) {
	s := &Store{}
	base := time.Now()
	s.CreateInquiry(newInquiry("INQ-1", types.DEPARTMENT_SUPPORT, types.PRIORITY_URGENT, base))
	s.CreateInquiry(newInquiry("INQ-2", types.DEPARTMENT_GENERAL, types.PRIORITY_NORMAL, base))
	s.CreateInquiry(newInquiry("INQ-3", types.DEPARTMENT_GENERAL, types.PRIORITY_NORMAL, base))
	s.UpdateInquiryStatus("INQ-3", types.INQUIRY_IN_PROGRESS)

	stats := s.InquiryStats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[types.INQUIRY_NEW])
	assert.Equal(t, 1, stats.ByStatus[types.INQUIRY_IN_PROGRESS])
	assert.Equal(t, 2, stats.ByDepartment[types.DEPARTMENT_GENERAL])
	assert.Equal(t, 1, stats.ByDepartment[types.DEPARTMENT_SUPPORT])
	assert.Equal(t, 2, stats.ByPriority[types.PRIORITY_NORMAL])
}
