package moderation

import (
	"context"
	"errors"
	"strings"
)

// Verdict is the outcome of a moderation check
type Verdict int

const (
	// Reject means the text must not be stored
	Reject Verdict = iota
	// Accept means the text passed the moderation check
	Accept
)

func (v Verdict) String() string {
	if v == Accept {
		return "accept"
	}
	return "reject"
}

// ErrUnavailable indicates the external moderation service could not be
// reached or returned an error. It is never treated as an accept.
var ErrUnavailable = errors.New("moderation service unavailable")

// Gate classifies free text as acceptable or not
type Gate interface {
	Classify(ctx context.Context, text string) (Verdict, error)
}

// parseVerdict normalizes the raw model output. Only a literal YES is an
// accept; anything else, including malformed output, rejects.
func parseVerdict(raw string) Verdict {
	if strings.ToUpper(strings.TrimSpace(raw)) == "YES" {
		return Accept
	}
	return Reject
}
