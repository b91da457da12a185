package timeutil

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDate(t *testing.T) {
	t.Run("same local day across offsets", func(t *testing.T) {
		// 14:00 UTC and 20:00 UTC are both Jan 15 in New York.
		a := time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC)
		b := time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC)

		assert.Equal(t, LocalDate(a, "America/New_York", "UTC"), LocalDate(b, "America/New_York", "UTC"))
	})

	t.Run("date shifts backwards west of UTC", func(t *testing.T) {
		// 03:00 UTC on Jan 16 is still Jan 15 evening in New York.
		now := time.Date(2025, 1, 16, 3, 0, 0, 0, time.UTC)

		got := LocalDate(now, "America/New_York", "UTC")

		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("date shifts forwards east of UTC", func(t *testing.T) {
		// 22:00 UTC on Jan 15 is already Jan 16 in Tokyo.
		now := time.Date(2025, 1, 15, 22, 0, 0, 0, time.UTC)

		got := LocalDate(now, "Asia/Tokyo", "UTC")

		assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("invalid zone falls back to workspace default", func(t *testing.T) {
		now := time.Date(2025, 1, 15, 22, 0, 0, 0, time.UTC)

		got := LocalDate(now, "Not/AZone", "Asia/Tokyo")

		assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("empty zone and fallback resolve to UTC", func(t *testing.T) {
		now := time.Date(2025, 1, 15, 23, 30, 0, 0, time.UTC)

		got := LocalDate(now, "", "")

		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestParseClock(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		h, m, err := ParseClock("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, h)
		assert.Equal(t, 30, m)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, _, err := ParseClock("0930")
		assert.Error(t, err)
	})

	t.Run("non numeric", func(t *testing.T) {
		_, _, err := ParseClock("nine:30")
		assert.Error(t, err)
	})

	t.Run("out of range", func(t *testing.T) {
		_, _, err := ParseClock("24:00")
		assert.Error(t, err)

		_, _, err = ParseClock("12:60")
		assert.Error(t, err)
	})
}

func TestPreviousWorkday(t *testing.T) {
	t.Run("midweek", func(t *testing.T) {
		// Wednesday Jan 15 2025 -> Tuesday Jan 14.
		wed := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), PreviousWorkday(wed))
	})

	t.Run("monday skips the weekend", func(t *testing.T) {
		// Monday Jan 13 2025 -> Friday Jan 10.
		mon := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), PreviousWorkday(mon))
	})
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 15, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(b, b))
}

func TestIsWorkday(t *testing.T) {
	assert.True(t, IsWorkday(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))  // Wednesday
	assert.False(t, IsWorkday(time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC))) // Saturday
	assert.False(t, IsWorkday(time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC))) // Sunday
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Wednesday, Jan 15", FormatDate(d))
}
