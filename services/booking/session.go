package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coursely/backend"
	"coursely/models"
	"coursely/services/tasks"
	"coursely/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// confirmedSessionTTL keeps a confirmed session around just long enough for
// the closing screen before the modal state is discarded.
const confirmedSessionTTL = 30 * time.Second

// SessionService owns booking modal state between HTTP calls. One booking at
// a time per session; the flow is strictly sequential.
type SessionService interface {
	InitiateSession(ctx context.Context, courseID, userID string) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectDuration(ctx context.Context, sessionID string, kind models.DurationKind) (*models.BookingSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error)
	ChangeMonth(ctx context.Context, sessionID string, year int, month time.Month) (*models.BookingSession, error)
	SelectSlot(ctx context.Context, sessionID, label string) (*models.BookingSession, error)
	SubmitDetails(ctx context.Context, sessionID, token string, details models.ReservationDetails) (*models.BookingSession, error)
	Pay(ctx context.Context, sessionID string, card models.CardDetails) (*models.BookingSession, error)
	Retry(ctx context.Context, sessionID string) (*models.BookingSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// ReminderScheduler enqueues reminder tasks. Satisfied by *asynq.Client.
type ReminderScheduler interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingSessionService stores sessions as JSON in Redis with a TTL,
// the same way the backend keeps no per-modal state at all.
type DefaultBookingSessionService struct {
	Backend      *backend.Client
	Availability AvailabilityService
	Submitter    *ReservationSubmitter
	Cache        utils.KVStore
	Reminders    ReminderScheduler // optional; nil disables reminder scheduling
}

func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, courseID, userID string) (*models.BookingSession, error) {
	course, err := s.Backend.CourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}
	if err := course.Validate(); err != nil {
		return nil, fmt.Errorf("backend returned an invalid course: %w", err)
	}
	if !course.Published {
		return nil, NewBookingError("notBookable", "This course is not available.")
	}
	if !course.InPerson {
		return nil, NewBookingError("notBookable", "This course does not offer in-person training.")
	}

	session := InitSession(course, userID, time.Now())
	session.SessionID = uuid.New().String()

	s.fetchVisibleMonth(ctx, session)

	if err := s.saveSession(ctx, session, utils.BookingSessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.loadSession(ctx, sessionID)
}

func (s *DefaultBookingSessionService) SelectDuration(ctx context.Context, sessionID string, kind models.DurationKind) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	SelectDuration(session, kind)
	if err := s.saveSession(ctx, session, utils.BookingSessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, NewBookingError("invalidDate", fmt.Sprintf("invalid date %q", date))
	}

	monthChanged, ok := SelectDate(session, day, time.Now())
	if !ok {
		// Past dates are a no-op; return the unchanged session.
		return session, nil
	}
	if monthChanged {
		s.fetchVisibleMonth(ctx, session)
	}
	if err := s.saveSession(ctx, session, utils.BookingSessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) ChangeMonth(ctx context.Context, sessionID string, year int, month time.Month) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if ChangeVisibleMonth(session, year, month) {
		s.fetchVisibleMonth(ctx, session)
		if err := s.saveSession(ctx, session, utils.BookingSessionTTL); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (s *DefaultBookingSessionService) SelectSlot(ctx context.Context, sessionID, label string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if SelectSlot(session, label) {
		if err := s.saveSession(ctx, session, utils.BookingSessionTTL); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (s *DefaultBookingSessionService) SubmitDetails(ctx context.Context, sessionID, token string, details models.ReservationDetails) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	submitErr := s.Submitter.SubmitDetails(ctx, session, token, details)
	// The session is saved even when intent creation failed: the state is
	// back in collecting-details with the server's message attached.
	if err := s.saveSession(ctx, session, utils.BookingSessionTTL); err != nil {
		return nil, err
	}
	if submitErr != nil {
		return session, submitErr
	}
	return session, nil
}

func (s *DefaultBookingSessionService) Pay(ctx context.Context, sessionID string, card models.CardDetails) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payErr := s.Submitter.Pay(ctx, session, card)

	ttl := utils.BookingSessionTTL
	if session.State == models.StateConfirmed {
		s.scheduleReminder(session)
		ttl = confirmedSessionTTL
	}
	if err := s.saveSession(ctx, session, ttl); err != nil {
		return nil, err
	}
	if payErr != nil {
		return session, payErr
	}
	return session, nil
}

func (s *DefaultBookingSessionService) Retry(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.Submitter.Retry(session); err != nil {
		return session, err
	}
	if err := s.saveSession(ctx, session, utils.BookingSessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Cache.Del(ctx, utils.BookingSessionPrefix+sessionID)
}

// fetchVisibleMonth issues a tagged availability fetch for the session's
// visible month and applies the result unless it was superseded.
func (s *DefaultBookingSessionService) fetchVisibleMonth(ctx context.Context, session *models.BookingSession) {
	year := session.Selection.VisibleYear
	month := time.Month(session.Selection.VisibleMonth)
	tag := BeginFetch(session)
	days := s.Availability.MonthAvailability(ctx, year, month)
	ApplyAvailability(session, tag, year, month, days)
}

func (s *DefaultBookingSessionService) scheduleReminder(session *models.BookingSession) {
	if s.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	date, err := time.Parse(dateLayout, session.Selection.SelectedDate)
	if err != nil {
		return
	}
	fireAt := date.AddDate(0, 0, -1)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		ReminderID: uuid.New().String(),
		UserID:     session.UserID,
		CourseID:   session.Selection.CourseID,
		FireDate:   fireAt.Format(time.RFC3339),
		Title:      "Upcoming in-person training",
		Body:       fmt.Sprintf("Your %s training on %s is tomorrow.", session.Selection.DurationKind, session.Selection.SelectedDate),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task", zap.Error(err))
	}
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, utils.BookingSessionPrefix+sessionID)
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.BookingSessionPrefix+session.SessionID, data, ttl); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
