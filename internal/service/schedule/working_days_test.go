package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseWeekendSet(t *testing.T) {
	t.Parallel()

	set := ParseWeekendSet([]string{"Friday", "Saturday"})
	assert.True(t, set[time.Friday])
	assert.True(t, set[time.Saturday])
	assert.False(t, set[time.Sunday])

	// Unknown names are dropped; nothing left means the default applies.
	assert.Equal(t, DefaultWeekend(), ParseWeekendSet([]string{"Funday"}))
	assert.Equal(t, DefaultWeekend(), ParseWeekendSet(nil))
}

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	calc := NewWorkingDaysCalculator(DefaultWeekend())

	assert.True(t, calc.IsWeekend(day(2025, 3, 8)))   // Saturday
	assert.True(t, calc.IsWeekend(day(2025, 3, 9)))   // Sunday
	assert.False(t, calc.IsWeekend(day(2025, 3, 10))) // Monday
}

func TestCount(t *testing.T) {
	t.Parallel()

	calc := NewWorkingDaysCalculator(DefaultWeekend())

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		holidays []time.Time
		want     int
	}{
		{
			name:  "march 2025 has 21 working days",
			start: day(2025, 3, 1),
			end:   day(2025, 3, 31),
			want:  21,
		},
		{
			name:     "weekday holiday is excluded",
			start:    day(2025, 3, 1),
			end:      day(2025, 3, 31),
			holidays: []time.Time{day(2025, 3, 17)},
			want:     20,
		},
		{
			name:     "weekend holiday does not double count",
			start:    day(2025, 3, 1),
			end:      day(2025, 3, 31),
			holidays: []time.Time{day(2025, 3, 8)},
			want:     21,
		},
		{
			name:  "single working day",
			start: day(2025, 3, 10),
			end:   day(2025, 3, 10),
			want:  1,
		},
		{
			name:  "single weekend day",
			start: day(2025, 3, 8),
			end:   day(2025, 3, 8),
			want:  0,
		},
		{
			name:  "end before start",
			start: day(2025, 3, 10),
			end:   day(2025, 3, 9),
			want:  0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, calc.Count(c.start, c.end, c.holidays))
		})
	}
}

func TestCount_CustomWeekend(t *testing.T) {
	t.Parallel()

	calc := NewWorkingDaysCalculator(ParseWeekendSet([]string{"Friday", "Saturday"}))

	// 2025-03-10 (Mon) through 2025-03-16 (Sun): Friday and Saturday off
	// leaves Mon-Thu plus Sunday.
	assert.Equal(t, 5, calc.Count(day(2025, 3, 10), day(2025, 3, 16), nil))
}
