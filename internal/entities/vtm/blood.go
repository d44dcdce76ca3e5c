package vtm

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

// Blood defaults and limits
const (
	DefaultGeneration   = 13
	MinGeneration       = 1
	DefaultBloodPotency = 1
	MaxHunger           = 5
)

// Generation is the number of steps between a vampire and Caine.
//
// The value can only be set through NewGeneration (JSON decoding calls it too),
// so a Generation is always at least 1. The zero value is DefaultGeneration.
type Generation struct {
	// offset from DefaultGeneration, so the zero value reads as 13
	offset int
}

// NewGeneration returns the generation n. A generation below 1 does not exist;
// it is stored as 1 and a warning is logged.
func NewGeneration(n int) Generation {
	if n < MinGeneration {
		slog.Warn("generation must be at least 1, using 1 instead",
			"requested", n,
			"stored", MinGeneration)
		n = MinGeneration
	}
	return Generation{offset: n - DefaultGeneration}
}

// Value returns the generation number
func (g Generation) Value() int {
	return g.offset + DefaultGeneration
}

// String returns the generation number as text
func (g Generation) String() string {
	return strconv.Itoa(g.Value())
}

// MarshalJSON writes the generation as a bare integer
func (g Generation) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Value())
}

// UnmarshalJSON reads a bare integer through NewGeneration
func (g *Generation) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.WrapWithCode(err, errors.CodeDecode, "generation must be an integer")
	}
	*g = NewGeneration(n)
	return nil
}

// Hunger is how badly a vampire needs to feed, from 0 to 5.
//
// The value can only be set through NewHunger (JSON decoding calls it too).
type Hunger struct {
	value int
}

// NewHunger returns hunger n clamped to [0, 5]. Values above 5 become 5.
func NewHunger(n int) Hunger {
	switch {
	case n > MaxHunger:
		n = MaxHunger
	case n < 0:
		n = 0
	}
	return Hunger{value: n}
}

// Value returns the hunger rating
func (h Hunger) Value() int {
	return h.value
}

// InRange reports whether the hunger rating lies in 0..=5
func (h Hunger) InRange() bool {
	return h.value >= 0 && h.value <= MaxHunger
}

// MarshalJSON writes hunger as a bare integer
func (h Hunger) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.value)
}

// UnmarshalJSON reads a bare integer through NewHunger
func (h *Hunger) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.WrapWithCode(err, errors.CodeDecode, "hunger must be an integer")
	}
	*h = NewHunger(n)
	return nil
}

// BloodPotency is the strength of a vampire's blood. Zero is reserved for
// thin-bloods, so new characters start at DefaultBloodPotency.
type BloodPotency int

// BloodPotencyFromGeneration estimates blood potency from generation using
// fixed bands. This is a simplification, not a rule from the book.
//
//	generation < 10  -> 3
//	generation 10-11 -> 2
//	generation 12-13 -> 1
//	generation >= 14 -> 0
func BloodPotencyFromGeneration(g Generation) BloodPotency {
	switch n := g.Value(); {
	case n < 10:
		return 3
	case n < 12:
		return 2
	case n < 14:
		return 1
	default:
		return 0
	}
}
