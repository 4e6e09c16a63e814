package lexicon

import (
	"errors"
	"fmt"
)

// ErrQueryFailed marks a read that could not execute against an opened
// dataset. Not-found outcomes are never reported with it.
var ErrQueryFailed = errors.New("query failed")

func queryFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrQueryFailed, op, err)
}
