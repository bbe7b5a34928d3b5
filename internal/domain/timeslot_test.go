package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownSlotLabel(t *testing.T) {
	for _, label := range DefaultSlotLabels {
		assert.True(t, IsKnownSlotLabel(DefaultSlotLabels, label))
	}

	assert.False(t, IsKnownSlotLabel(DefaultSlotLabels, "9:00 AM"))
	assert.False(t, IsKnownSlotLabel(DefaultSlotLabels, ""))
}

func TestAllSlotsPassed(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2026, time.September, 1, hour, minute, 0, 0, time.UTC)
	}

	// Last catalog slot starts at 4:30 PM
	assert.False(t, AllSlotsPassed(DefaultSlotLabels, day(8, 0)))
	assert.False(t, AllSlotsPassed(DefaultSlotLabels, day(16, 29)))
	assert.True(t, AllSlotsPassed(DefaultSlotLabels, day(16, 30)))
	assert.True(t, AllSlotsPassed(DefaultSlotLabels, day(23, 59)))
}
