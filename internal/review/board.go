// File: internal/review/board.go
package review

import (
	"slices"
	"strings"

	"teeup_backend/internal/common"
)

// PlaceholderIDOffset is added to an application id to form its approved record id.
const PlaceholderIDOffset = 1000

var (
	ErrNotPending        = common.ErrNotFound.WithDetails("Application is not pending.")
	ErrAlreadyProcessing = common.ErrConflict.WithDetails("Application is already being processed.")
)

// Board is the admin review state. Transitions never modify their input.
type Board struct {
	Pending    []Application
	Approved   []ApprovedPro
	Processing map[int64]struct{}
}

// NewBoard builds a board from repository contents.
func NewBoard(pending []Application, approved []ApprovedPro) Board {
	return Board{
		Pending:    append([]Application(nil), pending...),
		Approved:   append([]ApprovedPro(nil), approved...),
		Processing: map[int64]struct{}{},
	}
}

func (b Board) clone() Board {
	next := NewBoard(b.Pending, b.Approved)
	for id := range b.Processing {
		next.Processing[id] = struct{}{}
	}
	return next
}

// IsPending reports whether id is in the pending list.
func (b Board) IsPending(id int64) bool {
	for _, a := range b.Pending {
		if a.ID == id {
			return true
		}
	}
	return false
}

// IsProcessing reports whether an approve or reject of id is in flight.
func (b Board) IsProcessing(id int64) bool {
	_, ok := b.Processing[id]
	return ok
}

// ProcessingIDs lists the in-flight ids in ascending order.
func (b Board) ProcessingIDs() []int64 {
	ids := make([]int64, 0, len(b.Processing))
	for id := range b.Processing {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// BeginProcessing marks a pending id as in flight.
func BeginProcessing(b Board, id int64) (Board, error) {
	if !b.IsPending(id) {
		return b, ErrNotPending
	}
	if b.IsProcessing(id) {
		return b, ErrAlreadyProcessing
	}
	next := b.clone()
	next.Processing[id] = struct{}{}
	return next, nil
}

// EndProcessing clears the in-flight mark without changing the lists.
func EndProcessing(b Board, id int64) Board {
	next := b.clone()
	delete(next.Processing, id)
	return next
}

// Placeholder is the record appended on approval: a fresh id with no identity fields.
// The approved application's details are not carried over, so the entry stays hidden
// in the table but is counted.
// TODO: copy name/title/location from the application once approval creates a real pro account.
func Placeholder(id int64) ApprovedPro {
	return ApprovedPro{
		ID:               id + PlaceholderIDOffset,
		Status:           StatusActive,
		SubscriptionTier: TierBasic,
	}
}

// Approve removes id from pending and appends its placeholder record.
func Approve(b Board, id int64) (Board, ApprovedPro, error) {
	if !b.IsPending(id) {
		return b, ApprovedPro{}, ErrNotPending
	}
	next := remove(b, id)
	pro := Placeholder(id)
	next.Approved = append(next.Approved, pro)
	return next, pro, nil
}

// Reject removes id from pending.
func Reject(b Board, id int64) (Board, error) {
	if !b.IsPending(id) {
		return b, ErrNotPending
	}
	return remove(b, id), nil
}

func remove(b Board, id int64) Board {
	next := b.clone()
	pending := next.Pending[:0]
	for _, a := range next.Pending {
		if a.ID != id {
			pending = append(pending, a)
		}
	}
	next.Pending = pending
	delete(next.Processing, id)
	return next
}

// VisibleApproved returns the approved pros shown in the table.
func VisibleApproved(b Board) []ApprovedPro {
	out := []ApprovedPro{}
	for _, p := range b.Approved {
		if p.Name != "" {
			out = append(out, p)
		}
	}
	return out
}

// ApprovedCount counts every approved record, placeholders included.
func ApprovedCount(b Board) int {
	return len(b.Approved)
}

// FilterApproved matches q case-insensitively against name, title and location.
func FilterApproved(pros []ApprovedPro, q string) []ApprovedPro {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return pros
	}
	out := []ApprovedPro{}
	for _, p := range pros {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Location), q) {
			out = append(out, p)
		}
	}
	return out
}
