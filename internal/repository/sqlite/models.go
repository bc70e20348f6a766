package sqlite

import (
	"time"

	"github.com/uptrace/bun"

	"awesomedevevents/internal/domain"
)

type eventModel struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID          string          `bun:"id,pk"`
	Title       string          `bun:"title,nullzero"`
	Description string          `bun:"description,type:varchar(200),nullzero"`
	StartDate   time.Time       `bun:"start_date,notnull"`
	EndDate     time.Time       `bun:"end_date,notnull"`
	IsDeleted   bool            `bun:"is_deleted,notnull,default:false"`
	Speakers    []*speakerModel `bun:"rel:has-many,join:id=dev_event_id"`
}

type speakerModel struct {
	bun.BaseModel `bun:"table:event_speakers,alias:s"`

	ID              string `bun:"id,pk"`
	DevEventID      string `bun:"dev_event_id,notnull"`
	Name            string `bun:"name,notnull"`
	TalkTitle       string `bun:"talk_title,nullzero"`
	TalkDescription string `bun:"talk_description,nullzero"`
	LinkedInProfile string `bun:"linkedin_profile,nullzero"`
}

func fromEvent(e *domain.Event) *eventModel {
	return &eventModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		IsDeleted:   e.IsDeleted,
	}
}

func (m *eventModel) toDomain() *domain.Event {
	speakers := make([]*domain.Speaker, 0, len(m.Speakers))
	for _, s := range m.Speakers {
		speakers = append(speakers, s.toDomain())
	}
	return &domain.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		IsDeleted:   m.IsDeleted,
		Speakers:    speakers,
	}
}

func fromSpeaker(s *domain.Speaker) *speakerModel {
	return &speakerModel{
		ID:              s.ID,
		DevEventID:      s.DevEventID,
		Name:            s.Name,
		TalkTitle:       s.TalkTitle,
		TalkDescription: s.TalkDescription,
		LinkedInProfile: s.LinkedInProfile,
	}
}

func (m *speakerModel) toDomain() *domain.Speaker {
	return &domain.Speaker{
		ID:              m.ID,
		DevEventID:      m.DevEventID,
		Name:            m.Name,
		TalkTitle:       m.TalkTitle,
		TalkDescription: m.TalkDescription,
		LinkedInProfile: m.LinkedInProfile,
	}
}
