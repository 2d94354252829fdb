package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"stock-sentiment-dashboard/internal/dashboard/dto"
	"stock-sentiment-dashboard/internal/dashboard/metrics"
	"stock-sentiment-dashboard/internal/dashboard/repository"
	"stock-sentiment-dashboard/pkg/logger"

	"github.com/patrickmn/go-cache"
)

// SessionService maps browser sessions to view controllers and runs their network
// operations in the background.
type SessionService interface {
	// Open returns the session's state, activating the controller on first use.
	Open(ctx context.Context, sessionID string) (ViewState, error)
	// Search sets the keyword draft and starts loading it.
	Search(ctx context.Context, sessionID, keyword string) error
	// RequestEmail sets the email form drafts and starts the submission.
	RequestEmail(ctx context.Context, sessionID string, form dto.EmailReportForm) error
	// Reset discards the session's state. The next Open activates it from the seed keyword.
	Reset(ctx context.Context, sessionID string) error
	// Drain blocks until all dispatched operations have completed.
	Drain()
}

// NewSessionService creates a session service. Idle controllers are dropped after ttl
// and rebuilt from the view state repository on the next request.
func NewSessionService(
	backend repository.BackendRepository,
	states repository.ViewStateRepository,
	log *logger.Logger,
	seedKeyword string,
	ttl time.Duration,
) SessionService {
	controllers := cache.New(ttl, 2*ttl)
	controllers.OnEvicted(func(string, interface{}) {
		metrics.ActiveSessions.Dec()
	})

	return &sessionService{
		backend:     backend,
		states:      states,
		logger:      log,
		seedKeyword: seedKeyword,
		controllers: controllers,
	}
}

type sessionService struct {
	backend     repository.BackendRepository
	states      repository.ViewStateRepository
	logger      *logger.Logger
	seedKeyword string

	mu          sync.Mutex
	controllers *cache.Cache
	wg          sync.WaitGroup
}

func (s *sessionService) Open(ctx context.Context, sessionID string) (ViewState, error) {
	controller := s.controller(ctx, sessionID)

	pending, err := controller.BeginActivate()
	if err != nil {
		s.persist(ctx, sessionID, controller)
		return controller.State(), nil
	}
	state := controller.State()
	if pending != nil {
		s.logger.InfoContext(ctx, "Activating dashboard session", logger.StringField("session_id", sessionID))
		s.dispatch(ctx, sessionID, controller, pending)
	}
	return state, nil
}

func (s *sessionService) Search(ctx context.Context, sessionID, keyword string) error {
	controller := s.controller(ctx, sessionID)
	controller.SetKeyword(keyword)

	pending, err := controller.BeginSearch()
	if err != nil {
		s.persist(ctx, sessionID, controller)
		return err
	}
	s.dispatch(ctx, sessionID, controller, pending)
	return nil
}

func (s *sessionService) RequestEmail(ctx context.Context, sessionID string, form dto.EmailReportForm) error {
	controller := s.controller(ctx, sessionID)
	controller.SetKeyword(form.Keyword)
	controller.SetEmailForm(form.Email, form.StartDate, form.EndDate)

	pending, err := controller.BeginEmailRequest()
	if err != nil {
		s.persist(ctx, sessionID, controller)
		return err
	}
	s.dispatch(ctx, sessionID, controller, pending)
	return nil
}

func (s *sessionService) Reset(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.states.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete view state: %w", err)
	}
	// A fresh controller takes the slot so results still in flight for the old one are dropped.
	s.controllers.Delete(sessionID)
	s.controllers.SetDefault(sessionID, NewViewController(s.backend, s.logger, s.seedKeyword))
	metrics.ActiveSessions.Inc()

	s.logger.InfoContext(ctx, "Reset dashboard session", logger.StringField("session_id", sessionID))
	return nil
}

func (s *sessionService) Drain() {
	s.wg.Wait()
}

// controller returns the live controller for sessionID, rebuilding it from the
// repository or creating a fresh one when none is cached.
func (s *sessionService) controller(ctx context.Context, sessionID string) *ViewController {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value, ok := s.controllers.Get(sessionID); ok {
		controller := value.(*ViewController)
		s.controllers.SetDefault(sessionID, controller)
		return controller
	}
	// An expired entry the janitor has not swept yet still counts as live.
	s.controllers.Delete(sessionID)

	controller := NewViewController(s.backend, s.logger, s.seedKeyword)
	record, err := s.states.Find(ctx, sessionID)
	switch {
	case err == nil:
		controller.Restore(record)
		s.logger.DebugContext(ctx, "Restored dashboard session", logger.StringField("session_id", sessionID))
	case !errors.Is(err, repository.ErrViewStateNotFound):
		s.logger.WarnContext(ctx, "Failed to restore dashboard session, starting fresh",
			logger.StringField("session_id", sessionID),
			logger.ErrorField(err),
		)
	}

	s.controllers.SetDefault(sessionID, controller)
	metrics.ActiveSessions.Inc()
	return controller
}

func (s *sessionService) dispatch(ctx context.Context, sessionID string, controller *ViewController, pending *Pending) {
	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := pending.Run(bg); errors.Is(err, ErrSuperseded) {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if value, found := s.controllers.Get(sessionID); found && value.(*ViewController) != controller {
			s.logger.DebugContext(bg, "Dropping result of replaced dashboard session", logger.StringField("session_id", sessionID))
			return
		}
		s.persist(bg, sessionID, controller)
	}()
}

func (s *sessionService) persist(ctx context.Context, sessionID string, controller *ViewController) {
	if err := s.states.Save(ctx, sessionID, controller.State().Record()); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist dashboard session",
			logger.StringField("session_id", sessionID),
			logger.ErrorField(err),
		)
	}
}
