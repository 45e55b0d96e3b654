// File: internal/booking/modal.go
package booking

import (
	"errors"
	"strings"
)

// ErrSubmitDisabled is returned when the submit button would be disabled.
var ErrSubmitDisabled = errors.New("booking: name, phone and consent are required")

// Closed is the initial modal.
func Closed() Modal {
	return Modal{State: StateClosed, Kind: KindReservation}
}

// Open shows the modal with a fresh form. Reopening clears a previous confirmation.
func Open(m Modal, proName string, services []Service, selectedDateTime string, kind Kind) Modal {
	if len(services) == 0 {
		services = DefaultServices
	}
	if !kind.Valid() {
		kind = KindReservation
	}
	return Modal{
		State:            StateOpen,
		Kind:             kind,
		ProName:          proName,
		Services:         services,
		SelectedDateTime: selectedDateTime,
		Form: Form{
			People:   DefaultPeople,
			Location: DefaultLocation,
			Service:  services[0].Name,
		},
	}
}

// Close hides the modal and discards the form.
func Close(m Modal) Modal {
	return Modal{State: StateClosed, Kind: m.Kind}
}

// Edit applies fn to the form. It is a no-op unless the modal is open.
func Edit(m Modal, fn func(*Form)) Modal {
	if m.State != StateOpen {
		return m
	}
	next := m
	fn(&next.Form)
	return next
}

// CanSubmit reports whether the submit button is enabled.
func CanSubmit(m Modal) bool {
	return m.State == StateOpen && m.Form.Name != "" && m.Form.Phone != "" && m.Form.Agree
}

// MissingFields lists the form fields blocking submission.
func MissingFields(f Form) []string {
	var missing []string
	if f.Name == "" {
		missing = append(missing, "name")
	}
	if f.Phone == "" {
		missing = append(missing, "phone")
	}
	if !f.Agree {
		missing = append(missing, "agree")
	}
	return missing
}

// Submit moves an open, complete modal to submitted and returns the collected request.
func Submit(m Modal) (Modal, Request, error) {
	if !CanSubmit(m) {
		return m, Request{}, ErrSubmitDisabled
	}
	req := Request{
		Kind:             m.Kind,
		ProName:          m.ProName,
		SelectedDateTime: m.SelectedDateTime,
		Name:             m.Form.Name,
		Phone:            m.Form.Phone,
		People:           m.Form.People,
		Location:         m.Form.Location,
		Service:          m.Form.Service,
		Note:             m.Form.Note,
	}
	next := m
	next.State = StateSubmitted
	return next, req, nil
}

// Fill copies visitor input onto the form, keeping defaults for fields left blank.
func Fill(in Form) func(*Form) {
	return func(f *Form) {
		f.Name = in.Name
		f.Phone = in.Phone
		f.Note = in.Note
		f.Agree = in.Agree
		if in.People > 0 {
			f.People = in.People
		}
		if loc := strings.TrimSpace(in.Location); loc != "" {
			f.Location = loc
		}
		if in.Service != "" {
			f.Service = in.Service
		}
	}
}

// Title is the modal heading for the kind.
func (k Kind) Title() string {
	if k == KindWaitlist {
		return "대기 신청"
	}
	return "레슨 예약 정보"
}

// SubmitLabel is the submit button text for the kind.
func (k Kind) SubmitLabel() string {
	if k == KindWaitlist {
		return "대기 신청하기"
	}
	return "예약 신청하기"
}
