// Package sample collects the fixed-size list of numbers a session works on
// and renders it back to the user.
package sample

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Size is the number of values every sample holds.
const Size = 10

var (
	// ErrInvalidNumber is returned by ParseValue for text that is not a finite
	// decimal real number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInputClosed is returned when input ends before Size values were read.
	ErrInputClosed = errors.New("input closed before the sample was complete")
	// ErrIncomplete is returned when a sample is requested from a Builder
	// that does not hold Size values yet.
	ErrIncomplete = errors.New("sample is incomplete")
	// ErrFull is returned when appending to a Builder that already holds Size
	// values.
	ErrFull = errors.New("sample is full")
)

// Sample is a finalized, ordered list of exactly Size finite values.
type Sample struct {
	xs []float64
}

// New builds a Sample from xs. It fails unless xs holds exactly Size finite
// values.
func New(xs ...float64) (Sample, error) {
	var b Builder
	for _, x := range xs {
		if err := b.Append(x); err != nil {
			return Sample{}, err
		}
	}
	return b.Sample()
}

// Values returns a copy of the values in entry order.
func (s Sample) Values() []float64 { return slices.Clone(s.xs) }

// Len returns the number of values in the sample.
func (s Sample) Len() int { return len(s.xs) }

// String renders the sample as a sequence literal.
func (s Sample) String() string { return FormatSequence(s.xs) }

// Builder accumulates validated values until a Sample is complete.
// The zero value is ready to use.
type Builder struct {
	xs []float64
}

// Append adds v as the next value.
func (b *Builder) Append(v float64) error {
	if b.Full() {
		return ErrFull
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrInvalidNumber, "%v", v)
	}
	b.xs = append(b.xs, v)
	return nil
}

// Len returns how many values have been accepted so far.
func (b *Builder) Len() int { return len(b.xs) }

// Next returns the 1-based position of the value to be entered next.
func (b *Builder) Next() int { return len(b.xs) + 1 }

// Full reports whether the builder holds Size values.
func (b *Builder) Full() bool { return len(b.xs) >= Size }

// Values returns a copy of the values accepted so far.
func (b *Builder) Values() []float64 { return slices.Clone(b.xs) }

// Sample returns the finalized sample.
func (b *Builder) Sample() (Sample, error) {
	if !b.Full() {
		return Sample{}, errors.Wrapf(ErrIncomplete, "have %d of %d values", len(b.xs), Size)
	}
	return Sample{xs: slices.Clone(b.xs)}, nil
}

// ParseValue parses one line of user input as a real number. Surrounding
// whitespace is ignored. Decimal and exponent notation with an optional sign
// are accepted; hexadecimal forms, digit separators, NaN, infinities and
// values that overflow float64 are rejected with ErrInvalidNumber.
// This is stricter than Python's float(), which also takes "1_000" and
// full-width digits.
func ParseValue(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	return v, nil
}
