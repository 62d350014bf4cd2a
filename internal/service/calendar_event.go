package service

import (
	"errors"
	"fmt"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxEventRange bounds a calendar range query
const maxEventRange = 366 * 24 * time.Hour

// CalendarEventService handles calendar events
type CalendarEventService struct {
	events    repository.CalendarEventRepositoryInterface
	orders    repository.ServiceOrderRepositoryInterface
	machinery repository.MachineryRepositoryInterface
	validator *validator.Validate
}

// NewCalendarEventService creates a new calendar event service
func NewCalendarEventService(
	events repository.CalendarEventRepositoryInterface,
	orders repository.ServiceOrderRepositoryInterface,
	machinery repository.MachineryRepositoryInterface,
	validator *validator.Validate,
) *CalendarEventService {
	return &CalendarEventService{
		events:    events,
		orders:    orders,
		machinery: machinery,
		validator: validator,
	}
}

// CalendarEventRequest represents the body of an event create or update
type CalendarEventRequest struct {
	CompanyID      *uuid.UUID `json:"company_id,omitempty"`
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Description    string     `json:"description,omitempty"`
	Start          time.Time  `json:"start"`
	End            time.Time  `json:"end"`
	AllDay         bool       `json:"all_day"`
	Type           string     `json:"type,omitempty"`
	MachineryID    *uuid.UUID `json:"machinery_id,omitempty"`
	ServiceOrderID *uuid.UUID `json:"service_order_id,omitempty"`
}

// CalendarEventResponse represents a calendar event
type CalendarEventResponse struct {
	ID             uuid.UUID        `json:"id"`
	CompanyID      uuid.UUID        `json:"company_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Start          string           `json:"start"`
	End            string           `json:"end"`
	AllDay         bool             `json:"all_day"`
	Type           models.EventType `json:"type"`
	MachineryID    *uuid.UUID       `json:"machinery_id,omitempty"`
	ServiceOrderID *uuid.UUID       `json:"service_order_id,omitempty"`
	CreatedByID    *uuid.UUID       `json:"created_by_id,omitempty"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

// CalendarRangeResponse lists the events overlapping a range
type CalendarRangeResponse struct {
	From   string                  `json:"from"`
	To     string                  `json:"to"`
	Events []CalendarEventResponse `json:"events"`
}

// Create creates a calendar event
func (s *CalendarEventService) Create(actor *Actor, req *CalendarEventRequest) (*CalendarEventResponse, error) {
	eventType, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	companyID, err := actor.CompanyScope(req.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(companyID, req); err != nil {
		return nil, err
	}

	createdBy := actor.UserID
	event := &models.CalendarEvent{
		CompanyID:      companyID,
		Title:          req.Title,
		Description:    req.Description,
		Start:          req.Start.UTC(),
		End:            req.End.UTC(),
		AllDay:         req.AllDay,
		Type:           eventType,
		MachineryID:    req.MachineryID,
		ServiceOrderID: req.ServiceOrderID,
		CreatedByID:    &createdBy,
	}
	if err := s.events.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return toEventResponse(event), nil
}

// GetByID retrieves an event visible to the actor
func (s *CalendarEventService) GetByID(actor *Actor, id uuid.UUID) (*CalendarEventResponse, error) {
	event, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// Range lists the events overlapping [from, to)
func (s *CalendarEventService) Range(actor *Actor, companyID *uuid.UUID, from, to time.Time) (*CalendarRangeResponse, error) {
	scope, err := actor.CompanyScope(companyID)
	if err != nil {
		return nil, err
	}
	if from.IsZero() || to.IsZero() {
		return nil, apperrors.NewValidationError("range", "from and to are required")
	}
	if !to.After(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if to.Sub(from) > maxEventRange {
		return nil, apperrors.NewValidationError("range", "range must not exceed one year")
	}

	events, err := s.events.ListRange(scope, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	responses := make([]CalendarEventResponse, len(events))
	for i := range events {
		responses[i] = *toEventResponse(&events[i])
	}
	return &CalendarRangeResponse{From: formatTime(from), To: formatTime(to), Events: responses}, nil
}

// Update updates an event
func (s *CalendarEventService) Update(actor *Actor, id uuid.UUID, req *CalendarEventRequest) (*CalendarEventResponse, error) {
	eventType, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	event, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(event.CompanyID, req); err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Start = req.Start.UTC()
	event.End = req.End.UTC()
	event.AllDay = req.AllDay
	event.Type = eventType
	event.MachineryID = req.MachineryID
	event.ServiceOrderID = req.ServiceOrderID

	if err := s.events.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	return toEventResponse(event), nil
}

// Delete deletes an event
func (s *CalendarEventService) Delete(actor *Actor, id uuid.UUID) error {
	if _, err := s.load(actor, id); err != nil {
		return err
	}
	if err := s.events.Delete(id); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func (s *CalendarEventService) validate(req *CalendarEventRequest) (models.EventType, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", validationFailed(err)
	}
	eventType := models.EventTypeOther
	if req.Type != "" {
		eventType = models.EventType(req.Type)
		if !eventType.IsValid() {
			return "", apperrors.NewValidationError("type", "invalid event type")
		}
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return "", apperrors.NewValidationError("start", "start and end are required")
	}
	if req.End.Before(req.Start) {
		return "", apperrors.ErrInvalidTimeRange
	}
	return eventType, nil
}

func (s *CalendarEventService) checkRefs(companyID uuid.UUID, req *CalendarEventRequest) error {
	if err := checkMachineryRef(s.machinery, companyID, req.MachineryID); err != nil {
		return err
	}
	return checkServiceOrderRef(s.orders, companyID, req.ServiceOrderID)
}

func (s *CalendarEventService) load(actor *Actor, id uuid.UUID) (*models.CalendarEvent, error) {
	event, err := s.events.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarEventNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	if !actor.CanAccess(event.CompanyID) {
		return nil, apperrors.ErrCalendarEventNotFound
	}
	return event, nil
}

func toEventResponse(e *models.CalendarEvent) *CalendarEventResponse {
	return &CalendarEventResponse{
		ID:             e.ID,
		CompanyID:      e.CompanyID,
		Title:          e.Title,
		Description:    e.Description,
		Start:          formatTime(e.Start),
		End:            formatTime(e.End),
		AllDay:         e.AllDay,
		Type:           e.Type,
		MachineryID:    e.MachineryID,
		ServiceOrderID: e.ServiceOrderID,
		CreatedByID:    e.CreatedByID,
		CreatedAt:      formatTime(e.CreatedAt),
		UpdatedAt:      formatTime(e.UpdatedAt),
	}
}
