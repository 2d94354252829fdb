package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stock-sentiment-dashboard/internal/dashboard/dto"
	"stock-sentiment-dashboard/internal/dashboard/metrics"
	"stock-sentiment-dashboard/internal/dashboard/repository"
	"stock-sentiment-dashboard/internal/entity"
	"stock-sentiment-dashboard/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// Pending is a started operation whose network call has not run yet.
type Pending struct {
	run func(ctx context.Context) error
}

// Run performs the network call and applies its result.
func (p *Pending) Run(ctx context.Context) error {
	return p.run(ctx)
}

type emailForm struct {
	Keyword   string `validate:"required"`
	Email     string `validate:"required"`
	StartDate string `validate:"required"`
	EndDate   string `validate:"required"`
}

// ViewController owns the state of one dashboard view.
//
// Each fetch and each email submission is tagged with a generation number. Only the
// completion of the latest generation writes state; older completions return ErrSuperseded.
type ViewController struct {
	mu       sync.Mutex
	backend  repository.BackendRepository
	validate *validator.Validate
	log      *logger.Logger

	state            ViewState
	activated        bool
	searchGeneration uint64
	emailGeneration  uint64
}

// NewViewController creates a controller whose keyword draft starts at seedKeyword.
func NewViewController(backend repository.BackendRepository, log *logger.Logger, seedKeyword string) *ViewController {
	return &ViewController{
		backend:  backend,
		validate: validator.New(),
		log:      log,
		state: ViewState{
			Display: Loading{},
			Draft:   Draft{Keyword: seedKeyword},
		},
	}
}

// Restore replaces the state with a persisted record. A record saved while loading
// leaves the controller unactivated so the next activation reloads the draft keyword.
func (c *ViewController) Restore(record *dto.ViewStateRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateFromRecord(record)
	_, loading := c.state.Display.(Loading)
	c.activated = !loading
}

// State returns a copy of the current state.
func (c *ViewController) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	if c.state.EmailStatus != nil {
		status := *c.state.EmailStatus
		state.EmailStatus = &status
	}
	return state
}

func (c *ViewController) SetKeyword(keyword string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Draft.Keyword = keyword
}

func (c *ViewController) SetEmailForm(email, startDate, endDate string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Draft.Email = email
	c.state.Draft.StartDate = startDate
	c.state.Draft.EndDate = endDate
}

// BeginActivate starts the first load of the draft keyword. It returns nil once the
// controller has been activated.
func (c *ViewController) BeginActivate() (*Pending, error) {
	c.mu.Lock()
	if c.activated {
		c.mu.Unlock()
		return nil, nil
	}
	c.activated = true
	keyword := c.state.Draft.Keyword
	c.mu.Unlock()

	return c.BeginLoad(keyword)
}

// Activate performs the first load synchronously.
func (c *ViewController) Activate(ctx context.Context) error {
	pending, err := c.BeginActivate()
	if err != nil || pending == nil {
		return err
	}
	return pending.Run(ctx)
}

// BeginLoad validates term and marks a fetch in flight.
func (c *ViewController) BeginLoad(term string) (*Pending, error) {
	keyword := strings.TrimSpace(term)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.activated = true
	c.searchGeneration++
	generation := c.searchGeneration

	if keyword == "" {
		c.state.SearchInFlight = false
		c.state.Display = Failed{Message: MessageEnterKeyword}
		return nil, &ValidationError{Message: MessageEnterKeyword}
	}

	c.state.Display = Loading{}
	c.state.SearchInFlight = true

	return &Pending{run: func(ctx context.Context) error {
		snapshot, err := c.backend.FetchSnapshot(ctx, keyword)
		return c.finishLoad(ctx, generation, keyword, snapshot, err)
	}}, nil
}

// LoadSnapshot fetches the snapshot for term and applies the result.
func (c *ViewController) LoadSnapshot(ctx context.Context, term string) error {
	pending, err := c.BeginLoad(term)
	if err != nil {
		return err
	}
	return pending.Run(ctx)
}

// BeginSearch starts a load of the draft keyword.
func (c *ViewController) BeginSearch() (*Pending, error) {
	c.mu.Lock()
	keyword := c.state.Draft.Keyword
	c.mu.Unlock()
	return c.BeginLoad(keyword)
}

// SubmitSearch loads the draft keyword.
func (c *ViewController) SubmitSearch(ctx context.Context) error {
	pending, err := c.BeginSearch()
	if err != nil {
		return err
	}
	return pending.Run(ctx)
}

func (c *ViewController) finishLoad(ctx context.Context, generation uint64, keyword string, snapshot *entity.DashboardSnapshot, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.searchGeneration {
		metrics.RecordSuperseded(metrics.OperationFetchSnapshot)
		c.log.DebugContext(ctx, "Discarding superseded dashboard result", logger.StringField("keyword", keyword))
		return ErrSuperseded
	}

	c.state.SearchInFlight = false
	if err != nil {
		message := err.Error()
		if message == "" {
			message = MessageLoadFailed
		}
		c.state.Display = Failed{Message: message}
		c.log.WarnContext(ctx, "Dashboard load failed", logger.StringField("keyword", keyword), logger.ErrorField(err))
		return err
	}

	c.state.Display = Loaded{Snapshot: snapshot}
	c.log.InfoContext(ctx, "Dashboard loaded", logger.StringField("keyword", keyword), logger.StringField("updated_at", snapshot.UpdatedAt))
	return nil
}

// BeginEmailRequest validates the email form and marks a submission in flight.
func (c *ViewController) BeginEmailRequest() (*Pending, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.EmailStatus = nil
	c.emailGeneration++
	generation := c.emailGeneration

	form := emailForm{
		Keyword:   strings.TrimSpace(c.state.Draft.Keyword),
		Email:     strings.TrimSpace(c.state.Draft.Email),
		StartDate: strings.TrimSpace(c.state.Draft.StartDate),
		EndDate:   strings.TrimSpace(c.state.Draft.EndDate),
	}
	if err := c.validate.Struct(form); err != nil {
		c.state.EmailInFlight = false
		c.state.EmailStatus = &EmailStatus{Kind: EmailStatusValidation, Text: MessageFillEmailForm}
		return nil, &ValidationError{Message: MessageFillEmailForm}
	}

	c.state.EmailInFlight = true
	request := entity.NewEmailReportRequest(form.Keyword, form.StartDate, form.EndDate, form.Email)

	return &Pending{run: func(ctx context.Context) error {
		err := c.backend.RequestEmailReport(ctx, request)
		return c.finishEmailRequest(ctx, generation, request, err)
	}}, nil
}

// SubmitEmailRequest sends the email report request built from the draft fields.
func (c *ViewController) SubmitEmailRequest(ctx context.Context) error {
	pending, err := c.BeginEmailRequest()
	if err != nil {
		return err
	}
	return pending.Run(ctx)
}

func (c *ViewController) finishEmailRequest(ctx context.Context, generation uint64, request *entity.EmailReportRequest, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.emailGeneration {
		metrics.RecordSuperseded(metrics.OperationEmailReport)
		c.log.DebugContext(ctx, "Discarding superseded email report result", logger.StringField("keyword", request.Keyword))
		return ErrSuperseded
	}

	c.state.EmailInFlight = false
	if err != nil {
		message := MessageEmailFailed
		var requestErr *repository.RequestError
		if errors.As(err, &requestErr) && requestErr.Message != "" {
			message = requestErr.Message
		} else if err.Error() != "" {
			message = err.Error()
		}
		c.state.EmailStatus = &EmailStatus{Kind: EmailStatusFailure, Text: MessageEmailFailedPrefix + message}
		c.log.WarnContext(ctx, "Email report request failed", logger.StringField("keyword", request.Keyword), logger.ErrorField(err))
		return err
	}

	c.state.EmailStatus = &EmailStatus{Kind: EmailStatusSuccess, Text: MessageEmailQueued}
	return nil
}
