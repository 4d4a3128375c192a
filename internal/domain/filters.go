package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// AgeRange bounds the age filter. Either end may be unset (nil).
type AgeRange struct {
	Min *int
	Max *int
}

// AgeRangePolicy decides what happens when Min > Max.
type AgeRangePolicy string

const (
	// AgeRangePass sends the bounds as entered; the service returns no results.
	AgeRangePass AgeRangePolicy = "pass"
	// AgeRangeSwap exchanges the bounds before building the request.
	AgeRangeSwap AgeRangePolicy = "swap"
)

// ParseAge maps a numeric input field to an age bound. Empty, non-numeric and
// negative input all mean "unset".
func ParseAge(input string) *int {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// FormatAge is the inverse of ParseAge for display; unset renders as "".
func FormatAge(age *int) string {
	if age == nil {
		return ""
	}
	return strconv.Itoa(*age)
}

// Inverted reports whether both bounds are set and Min > Max.
func (r AgeRange) Inverted() bool {
	return r.Min != nil && r.Max != nil && *r.Min > *r.Max
}

// Normalize applies policy to an inverted range and returns the result.
func (r AgeRange) Normalize(policy AgeRangePolicy) AgeRange {
	if policy == AgeRangeSwap && r.Inverted() {
		return AgeRange{Min: IntPtr(*r.Max), Max: IntPtr(*r.Min)}
	}
	return r
}

// Equal compares bound values, not pointers.
func (r AgeRange) Equal(other AgeRange) bool {
	return intPtrEqual(r.Min, other.Min) && intPtrEqual(r.Max, other.Max)
}

func (r AgeRange) String() string {
	if r.Min == nil && r.Max == nil {
		return "any age"
	}
	return fmt.Sprintf("%s-%s", FormatAge(r.Min), FormatAge(r.Max))
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Filter is the search view's filter state. Breed order is irrelevant.
type Filter struct {
	Breeds []string
	Sort   SortOrder
	Age    AgeRange
}

// DefaultFilter is the filter state at view mount.
func DefaultFilter() Filter {
	return Filter{Sort: SortOrderAsc}
}

// Equal reports whether two filters select the same results.
func (f Filter) Equal(other Filter) bool {
	if f.Sort != other.Sort || !f.Age.Equal(other.Age) || len(f.Breeds) != len(other.Breeds) {
		return false
	}
	a := slices.Clone(f.Breeds)
	b := slices.Clone(other.Breeds)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// HasBreed reports whether breed is selected.
func (f Filter) HasBreed(breed string) bool {
	return slices.Contains(f.Breeds, breed)
}
