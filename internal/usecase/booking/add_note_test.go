package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

func TestAddNoteExecute(t *testing.T) {
	repo := new(mockRepository)
	cache := new(mockCache)

	stored := &models.Booking{
		ID:           "bk-1",
		BarbershopID: "shop-1",
		ClientNotes:  models.Notes{{Text: "hi", From: "client"}},
	}

	repo.On("GetByID", mock.Anything, "shop-1", "bk-1").Return(stored, nil)
	repo.On("UpdateFields", mock.Anything, "bk-1", mock.MatchedBy(func(fields map[string]any) bool {
		notes, ok := fields["barbershop_notes"].(models.Notes)
		if !ok || len(notes) != 1 {
			return false
		}
		// client notes are never written from this path
		_, hasClient := fields["client_notes"]
		return notes[0].Text == "see you at 3" && notes[0].From == "barbershop" && !hasClient
	})).Return(nil)
	cache.On("Invalidate", mock.Anything, "shop-1").Return(nil)

	uc := NewAddNote(repo, cache, nil)
	uc.now = fixedNow

	b, err := uc.Execute(context.Background(), AddNoteInput{
		BarbershopID: "shop-1",
		UserID:       "user-1",
		BookingID:    "bk-1",
		Text:         "  see you at 3  ",
	})

	require.NoError(t, err)
	require.Len(t, b.BarbershopNotes, 1)
	assert.Equal(t, "see you at 3", b.BarbershopNotes[0].Text)
	assert.Equal(t, fixedNow(), b.BarbershopNotes[0].Timestamp)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAddNoteRejectsEmptyText(t *testing.T) {
	repo := new(mockRepository)

	uc := NewAddNote(repo, nil, nil)

	_, err := uc.Execute(context.Background(), AddNoteInput{
		BarbershopID: "shop-1",
		BookingID:    "bk-1",
		Text:         "   ",
	})

	require.Error(t, err)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "empty_note", code)

	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestMergedNotesOrdersBothLogs(t *testing.T) {
	t0 := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)

	b := &models.Booking{
		ClientNotes: models.Notes{
			{Text: "first", Timestamp: t0, From: "client"},
			{Text: "third", Timestamp: t0.Add(2 * time.Minute), From: "client"},
		},
		BarbershopNotes: models.Notes{
			{Text: "second", Timestamp: t0.Add(time.Minute), From: "barbershop"},
		},
	}

	merged := MergedNotes(b)

	require.Len(t, merged, 3)
	assert.Equal(t, "first", merged[0].Text)
	assert.Equal(t, "second", merged[1].Text)
	assert.Equal(t, "third", merged[2].Text)
}
