package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays(t *testing.T) {
	now := time.Date(2026, time.October, 14, 16, 30, 0, 0, time.UTC)
	days := Days(now, ScheduleDays)
	require.Len(t, days, 7)

	assert.Equal(t, "2026-10-14", days[0].ISO)
	assert.Equal(t, "10. 14. (수)", days[0].Label)
	assert.Equal(t, "2026-10-20", days[6].ISO)
	assert.Equal(t, "10. 20. (화)", days[6].Label)
}

func TestDays_CrossesMonth(t *testing.T) {
	days := Days(time.Date(2026, time.October, 29, 0, 0, 0, 0, time.UTC), 7)
	assert.Equal(t, "2026-11-04", days[6].ISO)
}

func TestSelectedDateTime(t *testing.T) {
	day := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	got := SelectedDateTime(day, "10:30")
	assert.Equal(t, "2026-10-15T10:30:00", got)
	assert.Equal(t, "2026-10-15 10:30:00", DisplayDateTime(got))
}

func TestValidSlot(t *testing.T) {
	assert.True(t, ValidSlot("19:30"))
	assert.False(t, ValidSlot("20:00"))
}
