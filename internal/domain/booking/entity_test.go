package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

func TestApplyTransitionAppendsHistoryEntry(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: "pending"}

	entry := ApplyTransition(b, StatusConfirmed, "", now)

	assert.Equal(t, "confirmed", b.Status)
	require.Len(t, b.StatusHistory, 1)
	assert.Equal(t, entry, b.StatusHistory[0])
	assert.Equal(t, "confirmed", entry.Status)
	assert.Equal(t, UpdatedByBarber, entry.UpdatedBy)
	assert.Equal(t, now, entry.Timestamp)
	assert.Empty(t, b.BarberReason)
}

func TestApplyTransitionCanceledStoresReason(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: "confirmed"}

	entry := ApplyTransition(b, StatusCanceled, "barber unavailable", now)

	assert.Equal(t, "canceled", b.Status)
	assert.Equal(t, "barber unavailable", b.BarberReason)
	assert.Equal(t, "barber unavailable", entry.Reason)
}

func TestApplyTransitionHistoryIsAppendOnly(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: "pending"}

	ApplyTransition(b, StatusConfirmed, "", now)
	ApplyTransition(b, StatusCompleted, "", now.Add(time.Hour))
	// setting the same status again still appends
	ApplyTransition(b, StatusCompleted, "", now.Add(2*time.Hour))

	require.Len(t, b.StatusHistory, 3)
	assert.Equal(t, "confirmed", b.StatusHistory[0].Status)
	assert.Equal(t, "completed", b.StatusHistory[1].Status)
	assert.Equal(t, "completed", b.StatusHistory[2].Status)
	assert.Equal(t, "completed", b.Status)
}

func TestApplyTransitionClampsBackwardClock(t *testing.T) {
	t1 := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: "pending"}

	ApplyTransition(b, StatusConfirmed, "", t1)
	// clock reads earlier than the last entry
	ApplyTransition(b, StatusCompleted, "", t1.Add(-time.Minute))

	require.Len(t, b.StatusHistory, 2)
	assert.False(t, b.StatusHistory[1].Timestamp.Before(b.StatusHistory[0].Timestamp))
	assert.Equal(t, t1, b.StatusHistory[1].Timestamp)
}

func TestMergeNotesInterleavesByTimestamp(t *testing.T) {
	t0 := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)

	client := models.Notes{
		{Text: "running late", Timestamp: t0, From: "client"},
		{Text: "here now", Timestamp: t0.Add(20 * time.Minute), From: "client"},
	}
	shop := models.Notes{
		{Text: "no problem", Timestamp: t0.Add(5 * time.Minute), From: "barbershop"},
	}

	merged := MergeNotes(client, shop)

	require.Len(t, merged, 3)
	assert.Equal(t, "running late", merged[0].Text)
	assert.Equal(t, "no problem", merged[1].Text)
	assert.Equal(t, "here now", merged[2].Text)
}

func TestMergeNotesTieKeepsClientFirst(t *testing.T) {
	ts := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)

	client := models.Notes{{Text: "client", Timestamp: ts, From: "client"}}
	shop := models.Notes{{Text: "shop", Timestamp: ts, From: "barbershop"}}

	merged := MergeNotes(client, shop)

	require.Len(t, merged, 2)
	assert.Equal(t, "client", merged[0].Text)
	assert.Equal(t, "shop", merged[1].Text)
}
