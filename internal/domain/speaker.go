package domain

import (
	"context"

	"github.com/google/uuid"
)

// Speaker represents a talk given at an event. DevEventID is a back-reference to the owning event.
// swagger:model Speaker
type Speaker struct {
	ID              string `json:"id"`
	DevEventID      string `json:"devEventId"`
	Name            string `json:"name"`
	TalkTitle       string `json:"talkTitle"`
	TalkDescription string `json:"talkDescription"`
	LinkedInProfile string `json:"linkedInProfile"`
}

// NewSpeaker returns a new Speaker with a freshly generated ID, attached to eventID.
func NewSpeaker(eventID, name, talkTitle, talkDescription, linkedInProfile string) *Speaker {
	return &Speaker{
		ID:              uuid.NewString(),
		DevEventID:      eventID,
		Name:            name,
		TalkTitle:       talkTitle,
		TalkDescription: talkDescription,
		LinkedInProfile: linkedInProfile,
	}
}

// SpeakerRepository defines the interface for speaker storage.
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
}
