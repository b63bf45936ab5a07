package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	now := time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", HumanDate(now, now))
	assert.Equal(t, "Tomorrow", HumanDate(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "Jul 20, 2025", HumanDate(time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC), now))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0h", FormatHours(0))
	assert.Equal(t, "45m", FormatHours(0.75))
	assert.Equal(t, "2h", FormatHours(2))
	assert.Equal(t, "2.5h", FormatHours(2.5))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestBulletList(t *testing.T) {
	out := BulletList([]string{"first", "second"})
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Empty(t, BulletList(nil))
}
