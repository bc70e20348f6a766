package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	e := NewEvent("Conf", "d", start, end)

	_, err := uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Conf", e.Title)
	assert.Equal(t, "d", e.Description)
	assert.Equal(t, start, e.StartDate)
	assert.Equal(t, end, e.EndDate)
	assert.False(t, e.IsDeleted)
	assert.True(t, e.IsActive())
	require.NotNil(t, e.Speakers)
	assert.Empty(t, e.Speakers)

	other := NewEvent("Conf", "d", start, end)
	assert.NotEqual(t, e.ID, other.ID)
}

func TestEvent_Update(t *testing.T) {
	e := NewEvent("Old", "old", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC))
	e.Speakers = append(e.Speakers, NewSpeaker(e.ID, "Alice", "Go", "", ""))
	e.Delete()
	id := e.ID

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	e.Update("New", strings.Repeat("x", 300), start, end)

	assert.Equal(t, id, e.ID)
	assert.Equal(t, "New", e.Title)
	// Update does not validate: over-long descriptions and reversed dates are accepted.
	assert.Len(t, e.Description, 300)
	assert.Equal(t, start, e.StartDate)
	assert.Equal(t, end, e.EndDate)
	assert.True(t, e.IsDeleted)
	assert.Len(t, e.Speakers, 1)
}

func TestEvent_Delete(t *testing.T) {
	e := NewEvent("Conf", "", time.Time{}, time.Time{})

	e.Delete()
	assert.True(t, e.IsDeleted)
	assert.False(t, e.IsActive())

	e.Delete()
	assert.True(t, e.IsDeleted)
}

func TestNewSpeaker(t *testing.T) {
	s := NewSpeaker("ev-1", "Alice", "Talk", "About Go", "https://linkedin.com/in/alice")

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "ev-1", s.DevEventID)
	assert.Equal(t, "Alice", s.Name)
	assert.Equal(t, "Talk", s.TalkTitle)
	assert.Equal(t, "About Go", s.TalkDescription)
	assert.Equal(t, "https://linkedin.com/in/alice", s.LinkedInProfile)
}

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     error
	}{
		{"empty", "", nil},
		{"exactly max", strings.Repeat("a", MaxDescriptionLength), nil},
		{"one over max", strings.Repeat("a", MaxDescriptionLength+1), ErrDescriptionTooLong},
		{"multibyte at max counts characters", strings.Repeat("é", MaxDescriptionLength), nil},
		{"multibyte over max", strings.Repeat("é", MaxDescriptionLength+1), ErrDescriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.description)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
