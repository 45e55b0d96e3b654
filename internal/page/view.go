// File: internal/page/view.go
package page

import (
	"embed"
	"html/template"
	"strings"

	"teeup_backend/internal/booking"
	"teeup_backend/internal/profile"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	homeTemplate    = "home"
	profileTemplate = "profile"
)

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(template.FuncMap{
		"displayDateTime": booking.DisplayDateTime,
		"peopleOptions":   peopleOptions,
		"lower":           strings.ToLower,
	}).ParseFS(templateFS, "templates/*.html")
}

func peopleOptions() []int {
	out := make([]int, booking.MaxPeople)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

type homeView struct {
	Profiles []profile.Summary
}

// profileView is everything the profile template renders.
type profileView struct {
	Slug         string
	Profile      profile.Profile
	Theme        themeView
	FellBack     bool
	Days         []booking.Day
	Slots        []string
	SelectedDay  string
	SelectedSlot string
	Modal        booking.Modal
	CanSubmit    bool
	Missing      []string
	KakaoURL     string
	ScrollIdleMS int64
}

type themeView struct {
	AccentColor string
	LogoURL     string
	FontPreset  string
	Dark        bool
}

func newThemeView(t profile.Theme) themeView {
	v := themeView{AccentColor: t.AccentColor, FontPreset: t.FontPreset, Dark: t.DarkModeEnabled}
	if t.LogoURL != nil {
		v.LogoURL = *t.LogoURL
	}
	return v
}

func (v profileView) IsOpen() bool      { return v.Modal.State == booking.StateOpen }
func (v profileView) IsSubmitted() bool { return v.Modal.State == booking.StateSubmitted }

// scheduleSelection picks the day and slot from the query. An unknown day means today;
// an unknown slot means nothing is selected yet.
func scheduleSelection(days []booking.Day, day, slot string) (selectedDay, selectedSlot, selectedDateTime string) {
	chosen := days[0]
	for _, d := range days {
		if d.ISO == day {
			chosen = d
			break
		}
	}
	if !booking.ValidSlot(slot) {
		return chosen.ISO, "", ""
	}
	return chosen.ISO, slot, booking.SelectedDateTime(chosen.Date, slot)
}

func kakaoURL(channelID string) string {
	if channelID == "" {
		return ""
	}
	return "https://pf.kakao.com/" + channelID + "/chat"
}
