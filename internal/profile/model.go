// File: internal/profile/model.go
package profile

// Alignment of a story section image relative to its copy.
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// Header is the hero block of a profile page.
type Header struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Summary   string `json:"summary"`
	HeroImage string `json:"heroImage"`
}

type Highlight struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Detail string `json:"detail"`
}

type StorySection struct {
	Title   string `json:"title"`
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Image   string `json:"image"`
	Align   string `json:"align"`
}

type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SpecGroup struct {
	Title string `json:"title"`
	Specs []Spec `json:"specs"`
}

type Testimonial struct {
	Quote string `json:"quote"`
	Name  string `json:"name"`
}

// Profile is the full content record of one golf professional.
type Profile struct {
	Profile       Header         `json:"profile"`
	Highlights    []Highlight    `json:"highlights"`
	StorySections []StorySection `json:"storySections"`
	SpecGroups    []SpecGroup    `json:"specGroups"`
	Testimonials  []Testimonial  `json:"testimonials"`
}

// Summary is the list projection of a profile.
type Summary struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	HeroImage string `json:"heroImage"`
}

// Entry pairs a slug with its profile; catalogs are ordered slices of entries.
// Theme holds the catalog's overrides of DefaultTheme.
type Entry struct {
	Slug    string
	Profile Profile
	Theme   ThemeUpdate
}

func (e Entry) summary() Summary {
	return Summary{
		Slug:      e.Slug,
		Name:      e.Profile.Profile.Name,
		Title:     e.Profile.Profile.Title,
		HeroImage: e.Profile.Profile.HeroImage,
	}
}
