package postgres

import (
	"context"
	"database/sql"

	"awesomedevevents/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{
		DB: db,
	}
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO event_speakers (id, dev_event_id, name, talk_title, talk_description, linkedin_profile)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := conn(ctx, r.DB).ExecContext(ctx, query, s.ID, s.DevEventID, s.Name, nullString(s.TalkTitle), nullString(s.TalkDescription), nullString(s.LinkedInProfile))
	return err
}
