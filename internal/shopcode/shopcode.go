// Package shopcode normalizes and validates public shop codes.
package shopcode

import (
	"fmt"
	"strings"

	"github.com/and161185/token-queue/internal/errs"
)

// MaxLen is the maximum length of a normalized code.
const MaxLen = 20

// ErrEmpty is returned when nothing valid remains after normalization.
var ErrEmpty = fmt.Errorf("%w: empty shop code", errs.ErrValidation)

// Normalize trims, uppercases and drops characters outside [A-Z0-9-],
// truncating the result to MaxLen.
func Normalize(raw string) string {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if b.Len() == MaxLen {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse normalizes raw and rejects codes that end up empty.
func Parse(raw string) (string, error) {
	c := Normalize(raw)
	if c == "" {
		return "", ErrEmpty
	}
	return c, nil
}
