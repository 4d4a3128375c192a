package domain

import (
	"fmt"
	"strings"
)

// SortField is the only field the search view sorts by.
const SortField = "breed"

// SortOrder specifies the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// IsValid checks if the sort order is valid.
func (s SortOrder) IsValid() bool {
	return s == SortOrderAsc || s == SortOrderDesc
}

// String returns the string representation of the sort order.
func (s SortOrder) String() string {
	return string(s)
}

// Toggle flips asc and desc. An invalid order toggles to asc.
func (s SortOrder) Toggle() SortOrder {
	if s == SortOrderAsc {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// Label is the human-readable direction.
func (s SortOrder) Label() string {
	if s == SortOrderDesc {
		return "Z to A"
	}
	return "A to Z"
}

// ParseSortOrder accepts "asc" or "desc" in any case.
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if !order.IsValid() {
		return "", fmt.Errorf("invalid sort order: %q (expected asc or desc)", s)
	}
	return order, nil
}

// SortParam formats the service's "<field>:<asc|desc>" sort parameter.
func SortParam(order SortOrder) string {
	if !order.IsValid() {
		order = SortOrderAsc
	}
	return SortField + ":" + order.String()
}
