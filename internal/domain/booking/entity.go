package booking

import (
	"sort"
	"time"

	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyTransition moves a booking to the target status and appends the
// matching history entry. The history is append-only; entry timestamps never
// go backwards, so a clock that reads earlier than the last entry is clamped
// to it.
func ApplyTransition(b *models.Booking, to Status, reason string, now time.Time) models.StatusChange {
	if n := len(b.StatusHistory); n > 0 {
		if last := b.StatusHistory[n-1].Timestamp; now.Before(last) {
			now = last
		}
	}

	entry := models.StatusChange{
		Status:    string(to),
		Timestamp: now,
		UpdatedBy: UpdatedByBarber,
		Reason:    reason,
	}

	if b.StatusHistory == nil {
		b.StatusHistory = models.StatusHistory{}
	}
	b.StatusHistory = append(b.StatusHistory, entry)
	b.Status = string(to)

	if to == StatusCanceled && reason != "" {
		b.BarberReason = reason
	}

	return entry
}

// MergeNotes interleaves the two per-party note logs by timestamp for
// display. Ties keep the original array order, client notes first, so the
// result is deterministic.
func MergeNotes(clientNotes, shopNotes models.Notes) models.Notes {
	merged := make(models.Notes, 0, len(clientNotes)+len(shopNotes))
	merged = append(merged, clientNotes...)
	merged = append(merged, shopNotes...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.Before(merged[j].Timestamp)
	})

	return merged
}
