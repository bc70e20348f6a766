package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"awesomedevevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	speakerRepo    domain.SpeakerRepository
	tx             domain.Transactor
	contextTimeout time.Duration
}

// NewEventService creates an EventService. Every call runs with the given timeout.
func NewEventService(eventRepo domain.EventRepository,
	speakerRepo domain.SpeakerRepository,
	tx domain.Transactor,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		speakerRepo:    speakerRepo,
		tx:             tx,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListActiveEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Speakers == nil {
		event.Speakers = []*domain.Speaker{}
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, title, description string, startDate, endDate time.Time) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := domain.NewEvent(title, description, startDate, endDate)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id, title, description string, startDate, endDate time.Time) error {
	return s.mutate(ctx, id, "update event", func(e *domain.Event) {
		e.Update(title, description, startDate, endDate)
	})
}

// DeleteEvent soft-deletes the event. Its speakers are left as they are.
func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	return s.mutate(ctx, id, "delete event", func(e *domain.Event) {
		e.Delete()
	})
}

// mutate loads the event, applies fn and persists it within one transaction.
func (s *eventService) mutate(ctx context.Context, id, op string, fn func(e *domain.Event)) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("%s: load: %w", op, err)
		}
		fn(event)
		if err := s.eventRepo.Update(ctx, event); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
}

// AddSpeaker stores a new speaker for eventID. Only existence of the event is
// checked, so soft-deleted events still accept speakers.
func (s *eventService) AddSpeaker(ctx context.Context, eventID, name, talkTitle, talkDescription, linkedInProfile string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.eventRepo.Exists(ctx, eventID)
		if err != nil {
			return fmt.Errorf("add speaker: check event: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		speaker := domain.NewSpeaker(eventID, name, talkTitle, talkDescription, linkedInProfile)
		if err := s.speakerRepo.Create(ctx, speaker); err != nil {
			return fmt.Errorf("add speaker: %w", err)
		}
		return nil
	})
}
