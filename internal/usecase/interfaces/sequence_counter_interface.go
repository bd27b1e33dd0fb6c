package interfaces

import "context"

// ISequenceCounter hands out the per-year request number sequence.
//
// NextSequence must be an atomic fetch-and-increment: two concurrent intakes
// in the same year must never observe the same value.
type ISequenceCounter interface {
	NextSequence(ctx context.Context, year int) (int64, error)
}
