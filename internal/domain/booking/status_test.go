package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCanceled, StatusDeclined, StatusNoShow,
	} {
		assert.True(t, IsValid(s), "status %q", s)
	}

	assert.False(t, IsValid("done"))
	assert.False(t, IsValid(""))
}

func TestCanTransitionIsUnguarded(t *testing.T) {
	// completed and canceled are not terminal
	assert.True(t, CanTransition(StatusCompleted, StatusPending))
	assert.True(t, CanTransition(StatusCanceled, StatusConfirmed))

	assert.False(t, CanTransition(StatusPending, "done"))
}
