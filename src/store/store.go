package store

import (
	"fmt"
	"sort"
	"sync"

	"chb/src/models"
	"chb/src/types"
)

// Store is the process-memory record repository. Records live only for the
// lifetime of the process; a restart loses everything. Creation and listing can
// interleave with deferred notification work, so every access goes through the
// mutex (append-then-publish).
type Store struct {
	mu        sync.RWMutex
	bookings  []*models.BookingRecord
	inquiries []*models.ContactInquiry
}

var store *Store

func GetStore() *Store {
	if store != nil {
		return store
	}
	store = &Store{}
	return store
}

// NewStore swaps the active store. Used by tests.
func NewStore(s *Store) {
	store = s
}

func (s *Store) CreateBooking(b *models.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.bookings {
		if existing.ID == b.ID {
			return fmt.Errorf("booking id %s already exists", b.ID)
		}
	}
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *Store) GetBooking(id string) (*models.BookingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

func (s *Store) CountBookings() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

func (s *Store) CreateInquiry(i *models.ContactInquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.inquiries {
		if existing.ID == i.ID {
			return fmt.Errorf("inquiry id %s already exists", i.ID)
		}
	}
	s.inquiries = append(s.inquiries, i)
	return nil
}

func (s *Store) GetInquiry(id string) (*models.ContactInquiry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.inquiries {
		if i.ID == id {
			return i, true
		}
	}
	return nil, false
}

// UpdateInquiryStatus is the only mutation allowed on a stored record.
func (s *Store) UpdateInquiryStatus(id string, status types.InquiryStatus) (*models.ContactInquiry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, i := range s.inquiries {
		if i.ID == id {
			i.Status = status
			return i, true
		}
	}
	return nil, false
}

// ListInquiries filters by department/status/priority and returns results sorted
// by priority rank (urgent first) then by descending submission time. The sort is
// stable so equal keys keep insertion order.
func (s *Store) ListInquiries(filters *types.InquiryQueryFilters) []*models.ContactInquiry {
	s.mu.RLock()
	results := make([]*models.ContactInquiry, 0, len(s.inquiries))
	for _, i := range s.inquiries {
		if filters.Department != "" && string(i.Department) != filters.Department {
			continue
		}
		if filters.Status != "" && string(i.Status) != filters.Status {
			continue
		}
		if filters.Priority != "" && string(i.Priority) != filters.Priority {
			continue
		}
		results = append(results, i)
	}
	s.mu.RUnlock()

	sort.SliceStable(results, func(a, b int) bool {
		ra, rb := types.PriorityRank(results[a].Priority), types.PriorityRank(results[b].Priority)
		if ra != rb {
			return ra < rb
		}
		return results[a].CreatedAt.After(results[b].CreatedAt)
	})
	if filters.Limit > 0 && len(results) > filters.Limit {
		results = results[:filters.Limit]
	}
	return results
}

func (s *Store) InquiryStats() *types.InquiryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &types.InquiryStats{
		Total:        len(s.inquiries),
		ByStatus:     map[types.InquiryStatus]int{},
		ByDepartment: map[types.Department]int{},
		ByPriority:   map[types.Priority]int{},
	}
	for _, i := range s.inquiries {
		stats.ByStatus[i.Status]++
		stats.ByDepartment[i.Department]++
		stats.ByPriority[i.Priority]++
	}
	return stats
}
