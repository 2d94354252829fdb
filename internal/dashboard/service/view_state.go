package service

import (
	"errors"

	"stock-sentiment-dashboard/internal/dashboard/dto"
	"stock-sentiment-dashboard/internal/entity"
)

// DisplayState is exactly one of Loading, Failed or Loaded.
type DisplayState interface {
	isDisplayState()
}

// Loading is shown while a dashboard fetch is in flight.
type Loading struct{}

// Failed is shown after a failed or rejected fetch. An empty Message means nothing was ever loaded.
type Failed struct {
	Message string
}

// Loaded carries the last successfully fetched snapshot.
type Loaded struct {
	Snapshot *entity.DashboardSnapshot
}

func (Loading) isDisplayState() {}
func (Failed) isDisplayState()  {}
func (Loaded) isDisplayState()  {}

// Draft holds the editable form fields.
type Draft struct {
	Keyword   string
	Email     string
	StartDate string
	EndDate   string
}

type EmailStatusKind string

const (
	EmailStatusSuccess    EmailStatusKind = "success"
	EmailStatusFailure    EmailStatusKind = "failure"
	EmailStatusValidation EmailStatusKind = "validation"
)

// EmailStatus is advisory text under the email form. It never affects the display state.
type EmailStatus struct {
	Kind EmailStatusKind
	Text string
}

// ViewState is an immutable copy of a controller's state.
type ViewState struct {
	Display        DisplayState
	Draft          Draft
	EmailStatus    *EmailStatus
	SearchInFlight bool
	EmailInFlight  bool
}

const (
	MessageEnterKeyword      = "Enter a stock keyword."
	MessageLoadFailed        = "Failed to load dashboard"
	MessageFillEmailForm     = "Please fill keyword, email, start date, and end date."
	MessageEmailQueued       = "✓ Queued successfully! We'll email you when the report is ready."
	MessageEmailFailedPrefix = "✗ "
	MessageEmailFailed       = "Failed to queue email request."
)

// ErrSuperseded is returned by a completion whose result was discarded because a newer request was issued.
var ErrSuperseded = errors.New("result superseded by a newer request")

// ValidationError reports input rejected before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Record converts the state into its serialisable form.
func (s ViewState) Record() *dto.ViewStateRecord {
	record := &dto.ViewStateRecord{
		Draft: dto.DraftDTO{
			Keyword:   s.Draft.Keyword,
			Email:     s.Draft.Email,
			StartDate: s.Draft.StartDate,
			EndDate:   s.Draft.EndDate,
		},
		SearchInFlight: s.SearchInFlight,
		EmailInFlight:  s.EmailInFlight,
	}

	switch d := s.Display.(type) {
	case Loaded:
		record.Display = dto.DisplayLoaded
		record.Snapshot = d.Snapshot
	case Failed:
		record.Display = dto.DisplayFailed
		record.Message = d.Message
	default:
		record.Display = dto.DisplayLoading
	}

	if s.EmailStatus != nil {
		record.EmailStatus = &dto.EmailStatusDTO{Kind: string(s.EmailStatus.Kind), Text: s.EmailStatus.Text}
	}
	return record
}

// StateFromRecord rebuilds a view state. In-flight flags are not restored.
func StateFromRecord(record *dto.ViewStateRecord) ViewState {
	state := ViewState{
		Draft: Draft{
			Keyword:   record.Draft.Keyword,
			Email:     record.Draft.Email,
			StartDate: record.Draft.StartDate,
			EndDate:   record.Draft.EndDate,
		},
	}

	switch {
	case record.Display == dto.DisplayLoaded && record.Snapshot != nil:
		state.Display = Loaded{Snapshot: record.Snapshot}
	case record.Display == dto.DisplayFailed:
		state.Display = Failed{Message: record.Message}
	default:
		state.Display = Loading{}
	}

	if record.EmailStatus != nil {
		state.EmailStatus = &EmailStatus{Kind: EmailStatusKind(record.EmailStatus.Kind), Text: record.EmailStatus.Text}
	}
	return state
}
