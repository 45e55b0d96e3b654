// File: internal/booking/schedule.go
package booking

import (
	"fmt"
	"strings"
	"time"
)

// ScheduleDays is how many days the schedule widget offers, starting today.
const ScheduleDays = 7

// Slots are the fixed lesson start times offered every day.
var Slots = []string{"09:00", "10:30", "13:00", "15:00", "19:30"}

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// Day is one selectable date of the schedule widget.
type Day struct {
	Date  time.Time
	ISO   string
	Label string
}

// Days returns n consecutive days starting at now's calendar date.
func Days(now time.Time, n int) []Day {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, Day{
			Date:  d,
			ISO:   d.Format("2006-01-02"),
			Label: fmt.Sprintf("%d. %d. (%s)", int(d.Month()), d.Day(), koreanWeekdays[d.Weekday()]),
		})
	}
	return out
}

// SelectedDateTime formats a day and slot as YYYY-MM-DDTHH:MM:00.
func SelectedDateTime(day time.Time, slot string) string {
	return day.Format("2006-01-02") + "T" + slot + ":00"
}

// DisplayDateTime is the human form shown in the modal.
func DisplayDateTime(selected string) string {
	return strings.Replace(selected, "T", " ", 1)
}

// ValidSlot reports whether slot is one of Slots.
func ValidSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}
