// File: internal/booking/model.go
package booking

// Kind distinguishes a direct reservation from a waitlist request.
type Kind string

const (
	KindReservation Kind = "reservation"
	KindWaitlist    Kind = "waitlist"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindReservation || k == KindWaitlist
}

// State of the booking modal.
type State string

const (
	StateClosed    State = "closed"
	StateOpen      State = "open"
	StateSubmitted State = "submitted"
)

const (
	DefaultLocation = "청담 Studio"
	DefaultPeople   = 1
	MaxPeople       = 3
)

// Service is a bookable lesson offering.
type Service struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
}

// Label is the option text shown in the service selector.
func (s Service) Label() string {
	return s.Name + " · " + s.Duration + " · " + s.Price
}

// DefaultServices is used when a pro has no services configured.
var DefaultServices = []Service{{Name: "Signature Lesson", Duration: "90m", Price: "₩180,000"}}

// Form holds the fields the visitor fills in.
type Form struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	People   int    `json:"people"`
	Location string `json:"location"`
	Service  string `json:"service"`
	Note     string `json:"note"`
	Agree    bool   `json:"agree"`
}

// Modal is the full booking dialog state.
type Modal struct {
	State            State
	Kind             Kind
	ProName          string
	Services         []Service
	SelectedDateTime string
	Form             Form
}

// Request is what a successful submission hands to the Sink.
type Request struct {
	RequestID        string `json:"requestId"`
	Kind             Kind   `json:"type"`
	ProName          string `json:"proName"`
	SelectedDateTime string `json:"selectedDateTime,omitempty"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	People           int    `json:"people"`
	Location         string `json:"location"`
	Service          string `json:"service"`
	Note             string `json:"note,omitempty"`
}

// SubmitRequest is the body of POST /api/bookings.
type SubmitRequest struct {
	Type             Kind   `json:"type" form:"type" binding:"omitempty,oneof=reservation waitlist"`
	ProSlug          string `json:"proSlug" form:"proSlug"`
	SelectedDateTime string `json:"selectedDateTime" form:"selectedDateTime" binding:"omitempty,datetime=2006-01-02T15:04:05"`
	Name             string `json:"name" form:"name"`
	Phone            string `json:"phone" form:"phone"`
	People           int    `json:"people" form:"people" binding:"omitempty,min=1,max=3"`
	Location         string `json:"location" form:"location"`
	Service          string `json:"service" form:"service"`
	Note             string `json:"note" form:"note"`
	Agree            bool   `json:"agree" form:"agree"`
}

// Form returns the visitor fields of the request.
func (r SubmitRequest) Form() Form {
	return Form{
		Name:     r.Name,
		Phone:    r.Phone,
		People:   r.People,
		Location: r.Location,
		Service:  r.Service,
		Note:     r.Note,
		Agree:    r.Agree,
	}
}

// SubmitResult is returned to API clients after a successful submission.
type SubmitResult struct {
	State     State  `json:"state"`
	RequestID string `json:"requestId"`
}
