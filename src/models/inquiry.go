package models

import (
	"fmt"
	"strings"
	"time"

	"chb/src/types"

	"github.com/google/uuid"
)

type ContactInquiry struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone,omitempty"`
	Company    string              `json:"company,omitempty"`
	Subject    string              `json:"subject"`
	Message    string              `json:"message"`
	Department types.Department    `json:"department"`
	Priority   types.Priority      `json:"priority"`
	Assignee   string              `json:"assignee"`
	Status     types.InquiryStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}

func NewInquiryID(now time.Time) string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("INQ-%d-%s", now.UnixMilli(), suffix)
}

func (i *ContactInquiry) ToAPIResponse() *types.APIResponseInquiry {
	return &types.APIResponseInquiry{
		ID:                i.ID,
		Name:              i.Name,
		Email:             i.Email,
		Subject:           i.Subject,
		Department:        i.Department,
		Priority:          i.Priority,
		Assignee:          i.Assignee,
		Status:            i.Status,
		EstimatedResponse: types.ResponseTimeFor(i.Priority),
		CreatedAt:         i.CreatedAt,
	}
}
