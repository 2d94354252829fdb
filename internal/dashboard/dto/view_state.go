package dto

import "stock-sentiment-dashboard/internal/entity"

const (
	DisplayLoading = "loading"
	DisplayFailed  = "failed"
	DisplayLoaded  = "loaded"
)

// DraftDTO carries the editable form fields of a session.
type DraftDTO struct {
	Keyword   string `json:"keyword"`
	Email     string `json:"email"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// EmailStatusDTO is the advisory line shown under the email form.
type EmailStatusDTO struct {
	Kind string `json:"kind"` // "success", "failure" or "validation"
	Text string `json:"text"`
}

// ViewStateRecord is the serialised view state of a session, used for persistence and the JSON API.
type ViewStateRecord struct {
	Display        string                    `json:"display"`
	Message        string                    `json:"message,omitempty"`
	Snapshot       *entity.DashboardSnapshot `json:"snapshot,omitempty"`
	Draft          DraftDTO                  `json:"draft"`
	EmailStatus    *EmailStatusDTO           `json:"email_status,omitempty"`
	SearchInFlight bool                      `json:"search_in_flight"`
	EmailInFlight  bool                      `json:"email_in_flight"`
}
