package storage

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ScoreFilter narrows ListScores. Zero fields do not filter. Dates are
// inclusive ISO dates.
type ScoreFilter struct {
	Date      string
	From      string
	To        string
	PlayerIDs []int
}
