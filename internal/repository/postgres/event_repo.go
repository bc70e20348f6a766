package postgres

import (
	"context"
	"database/sql"
	"errors"

	"awesomedevevents/internal/domain"

	"github.com/lib/pq"
)

// activePredicate is the single filter that defines an active event.
const activePredicate = `is_deleted = FALSE`

const eventColumns = `id, title, description, start_date, end_date, is_deleted`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, title, description, start_date, end_date, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := conn(ctx, r.DB).ExecContext(ctx, query, e.ID, nullString(e.Title), nullString(e.Description), e.StartDate, e.EndDate, e.IsDeleted)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, err := r.getRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	speakers, err := r.speakersByEventIDs(ctx, []string{e.ID})
	if err != nil {
		return nil, err
	}
	e.Speakers = speakers[e.ID]
	return e, nil
}

func (r *eventRepository) GetForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	return r.getRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, id)
}

func (r *eventRepository) getRow(ctx context.Context, query, id string) (*domain.Event, error) {
	e, err := scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListActive(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE ` + activePredicate
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	ids := make([]string, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return events, nil
	}

	speakers, err := r.speakersByEventIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		e.Speakers = speakers[e.ID]
	}
	return events, nil
}

// speakersByEventIDs loads the speakers of all given events in one query.
// Every requested event gets a non-nil slice.
func (r *eventRepository) speakersByEventIDs(ctx context.Context, ids []string) (map[string][]*domain.Speaker, error) {
	query := `
		SELECT id, dev_event_id, name, talk_title, talk_description, linkedin_profile
		FROM event_speakers
		WHERE dev_event_id = ANY($1)
	`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string][]*domain.Speaker, len(ids))
	for _, id := range ids {
		out[id] = []*domain.Speaker{}
	}
	for rows.Next() {
		s := &domain.Speaker{}
		var titleNull, descNull, linkNull sql.NullString
		if err := rows.Scan(&s.ID, &s.DevEventID, &s.Name, &titleNull, &descNull, &linkNull); err != nil {
			return nil, err
		}
		s.TalkTitle = titleNull.String
		s.TalkDescription = descNull.String
		s.LinkedInProfile = linkNull.String
		out[s.DevEventID] = append(out[s.DevEventID], s)
	}
	return out, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, start_date = $3, end_date = $4, is_deleted = $5
		WHERE id = $6
	`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query, nullString(e.Title), nullString(e.Description), e.StartDate, e.EndDate, e.IsDeleted, e.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var titleNull, descNull sql.NullString
	if err := row.Scan(&e.ID, &titleNull, &descNull, &e.StartDate, &e.EndDate, &e.IsDeleted); err != nil {
		return nil, err
	}
	e.Title = titleNull.String
	e.Description = descNull.String
	return e, nil
}

// nullString stores empty optional text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
