package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Vector is one respondent's binary availability mark per slot across the
// whole window. It is stored as bitstring text ("0101...") with one character
// per slot.
type Vector []bool

func NewVector(totalSlots int) Vector {
	return make(Vector, totalSlots)
}

// At reads a mark with the out-of-range fallback: indexes beyond the vector's
// length read as unavailable. A snapshot predating a range change must never
// error when queried against the current grid.
func (v Vector) At(i int) bool {
	if i < 0 || i >= len(v) {
		return false
	}
	return v[i]
}

// Count returns the number of set marks.
func (v Vector) Count() int {
	n := 0
	for _, set := range v {
		if set {
			n++
		}
	}
	return n
}

// Value implements driver.Valuer, encoding the vector as bitstring text.
func (v Vector) Value() (driver.Value, error) {
	var b strings.Builder
	b.Grow(len(v))
	for _, set := range v {
		if set {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String(), nil
}

// Scan implements sql.Scanner. Any character other than '1' reads as
// unavailable, so malformed rows degrade instead of failing the fetch.
func (v *Vector) Scan(src any) error {
	var raw string
	switch s := src.(type) {
	case string:
		raw = s
	case []byte:
		raw = string(s)
	case nil:
		*v = Vector{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Vector", src)
	}

	out := make(Vector, len(raw))
	for i := 0; i < len(raw); i++ {
		out[i] = raw[i] == '1'
	}
	*v = out
	return nil
}
