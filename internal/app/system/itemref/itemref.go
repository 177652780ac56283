// Package itemref resolves list-item references that arrive as URL path
// segments. Older editor forms address items by zero-based position; newer
// ones pass the item's ObjectID. Both must keep working: a ref that parses
// as a valid ObjectID is matched by identifier, anything else is tried as a
// positional index.
package itemref

import (
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a ref resolves to no item.
var ErrNotFound = errors.New("item not found")

// Ref is a parsed item reference.
type Ref struct {
	id    primitive.ObjectID
	index int
	byID  bool
}

// Parse interprets raw as an ObjectID ref when it is structurally valid
// hex, otherwise as a positional index. A ref that is neither yields
// ErrNotFound.
func Parse(raw string) (Ref, error) {
	if id, err := primitive.ObjectIDFromHex(raw); err == nil {
		return Ref{id: id, byID: true}, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return Ref{}, ErrNotFound
	}
	return Ref{index: n}, nil
}

// ByID reports whether the ref addresses by identifier.
func (r Ref) ByID() bool { return r.byID }

// ID returns the identifier; only meaningful when ByID is true.
func (r Ref) ID() primitive.ObjectID { return r.id }

// Resolve returns the index of the referenced item in a list of length n.
// For identifier refs, find must report the index of the item with the
// given id, or -1. Out-of-range indexes and unmatched identifiers yield
// ErrNotFound.
func (r Ref) Resolve(n int, find func(primitive.ObjectID) int) (int, error) {
	if r.byID {
		if i := find(r.id); i >= 0 {
			return i, nil
		}
		return 0, ErrNotFound
	}
	if r.index >= n {
		return 0, ErrNotFound
	}
	return r.index, nil
}
