// SPDX-License-Identifier: MIT
// Package: cechrips/simplicial
//
// types.go — complex kinds, simplices and sentinel errors.

package simplicial

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is the umbrella for every malformed-input error returned by
// Build. Callers should treat it as a programming error.
var ErrInvalidInput = errors.New("simplicial: invalid input")

// Sentinel errors for Build. Each one wraps ErrInvalidInput.
var (
	// ErrNegativeRadius indicates radius < 0.
	ErrNegativeRadius = fmt.Errorf("%w: negative radius", ErrInvalidInput)

	// ErrNonFiniteRadius indicates a NaN or infinite radius.
	ErrNonFiniteRadius = fmt.Errorf("%w: non-finite radius", ErrInvalidInput)

	// ErrNonFiniteCoordinate indicates a point with a NaN or infinite coordinate.
	ErrNonFiniteCoordinate = fmt.Errorf("%w: non-finite coordinate", ErrInvalidInput)

	// ErrUnknownKind indicates a Kind other than Cech or Rips.
	ErrUnknownKind = fmt.Errorf("%w: unknown complex kind", ErrInvalidInput)
)

// Kind selects the triangle predicate.
type Kind int

const (
	// Cech admits a triangle when the three disks share a common point.
	Cech Kind = iota
	// Rips admits a triangle when every pair of the three disks overlaps.
	Rips
)

// String returns "cech" or "rips".
func (k Kind) String() string {
	switch k {
	case Cech:
		return "cech"
	case Rips:
		return "rips"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k == Cech || k == Rips
}

// ParseKind accepts "cech", "čech" or "rips" in any letter case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cech", "čech":
		return Cech, nil
	case "rips", "vietoris-rips", "vr":
		return Rips, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(k), ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Edge is an unordered pair of point indices stored with I < J.
type Edge struct {
	I, J int
}

// NewEdge returns the canonical Edge for {i, j}.
func NewEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{I: i, J: j}
}

// Triangle is an unordered triple of point indices stored with I < J < K.
type Triangle struct {
	I, J, K int
}

// NewTriangle returns the canonical Triangle for {i, j, k}.
func NewTriangle(i, j, k int) Triangle {
	if i > j {
		i, j = j, i
	}
	if j > k {
		j, k = k, j
	}
	if i > j {
		i, j = j, i
	}
	return Triangle{I: i, J: j, K: k}
}

// Edges returns the three sides of t.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.I, t.J}, {t.J, t.K}, {t.I, t.K}}
}
