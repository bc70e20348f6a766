package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"awesomedevevents/internal/domain"
)

// activePredicate is the single filter that defines an active event.
const activePredicate = "e.is_deleted = ?"

type eventRepository struct {
	DB *bun.DB
}

func NewEventRepository(db *bun.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	_, err := idb(ctx, r.DB).NewInsert().Model(fromEvent(e)).Exec(ctx)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	m := new(eventModel)
	err := idb(ctx, r.DB).NewSelect().
		Model(m).
		Relation("Speakers").
		Where("e.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, notFound(err)
	}
	return m.toDomain(), nil
}

// GetForUpdate loads the event row. SQLite has no row locks; the single
// connection pool already serializes transactions.
func (r *eventRepository) GetForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	m := new(eventModel)
	err := idb(ctx, r.DB).NewSelect().
		Model(m).
		Where("e.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, notFound(err)
	}
	e := m.toDomain()
	e.Speakers = nil
	return e, nil
}

func (r *eventRepository) ListActive(ctx context.Context) ([]*domain.Event, error) {
	var models []*eventModel
	err := idb(ctx, r.DB).NewSelect().
		Model(&models).
		Relation("Speakers").
		Where(activePredicate, false).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(models))
	for _, m := range models {
		events = append(events, m.toDomain())
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	res, err := idb(ctx, r.DB).NewUpdate().
		Model(fromEvent(e)).
		Column("title", "description", "start_date", "end_date", "is_deleted").
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Exists(ctx context.Context, id string) (bool, error) {
	return idb(ctx, r.DB).NewSelect().
		Model((*eventModel)(nil)).
		Where("e.id = ?", id).
		Exists(ctx)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

type speakerRepository struct {
	DB *bun.DB
}

func NewSpeakerRepository(db *bun.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	_, err := idb(ctx, r.DB).NewInsert().Model(fromSpeaker(s)).Exec(ctx)
	return err
}
