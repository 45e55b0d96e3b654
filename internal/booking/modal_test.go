package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openModal() Modal {
	return Open(Closed(), "Elliot Kim", nil, "2026-10-14T09:00:00", KindReservation)
}

func TestOpen_Defaults(t *testing.T) {
	m := openModal()
	assert.Equal(t, StateOpen, m.State)
	assert.Equal(t, Form{People: 1, Location: "청담 Studio", Service: "Signature Lesson"}, m.Form)

	custom := Open(Closed(), "Mina Jang", []Service{{Name: "Putting Lab", Duration: "60m", Price: "₩120,000"}}, "", "bogus")
	assert.Equal(t, "Putting Lab", custom.Form.Service)
	assert.Equal(t, KindReservation, custom.Kind)
}

func TestCanSubmit_Guard(t *testing.T) {
	tests := []struct {
		name  string
		form  Form
		allow bool
	}{
		{"all empty", Form{}, false},
		{"missing name", Form{Phone: "01012345678", Agree: true}, false},
		{"missing phone", Form{Name: "Kim", Agree: true}, false},
		{"no consent", Form{Name: "Kim", Phone: "01012345678"}, false},
		{"complete", Form{Name: "Kim", Phone: "01012345678", Agree: true}, true},
		{"no format validation", Form{Name: "?", Phone: "x", Agree: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Edit(openModal(), Fill(tt.form))
			assert.Equal(t, tt.allow, CanSubmit(m))
			_, _, err := Submit(m)
			if tt.allow {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrSubmitDisabled)
			}
		})
	}
}

func TestSubmit_TransitionsToSubmitted(t *testing.T) {
	m := Edit(openModal(), Fill(Form{Name: "Kim", Phone: "01012345678", Agree: true, People: 2, Note: "left-handed"}))
	next, req, err := Submit(m)
	require.NoError(t, err)

	assert.Equal(t, StateSubmitted, next.State)
	assert.Equal(t, Request{
		Kind:             KindReservation,
		ProName:          "Elliot Kim",
		SelectedDateTime: "2026-10-14T09:00:00",
		Name:             "Kim",
		Phone:            "01012345678",
		People:           2,
		Location:         "청담 Studio",
		Service:          "Signature Lesson",
		Note:             "left-handed",
	}, req)
	assert.False(t, CanSubmit(next), "a submitted modal cannot be submitted again")
}

func TestEdit_IgnoredUnlessOpen(t *testing.T) {
	closed := Edit(Closed(), Fill(Form{Name: "Kim"}))
	assert.Empty(t, closed.Form.Name)

	submitted, _, err := Submit(Edit(openModal(), Fill(Form{Name: "Kim", Phone: "1", Agree: true})))
	require.NoError(t, err)
	after := Edit(submitted, Fill(Form{Name: "Lee"}))
	assert.Equal(t, "Kim", after.Form.Name)
}

func TestReopenClearsSubmitted(t *testing.T) {
	submitted, _, err := Submit(Edit(openModal(), Fill(Form{Name: "Kim", Phone: "1", Agree: true})))
	require.NoError(t, err)

	reopened := Open(Close(submitted), "Elliot Kim", nil, "", KindWaitlist)
	assert.Equal(t, StateOpen, reopened.State)
	assert.Empty(t, reopened.Form.Name)
	assert.Equal(t, "대기 신청하기", reopened.Kind.SubmitLabel())
}
