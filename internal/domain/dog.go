// Package domain holds the value types of the dog search client: records,
// filter and pagination state, the favorites set, and the request parameters
// derived from them. It has no dependencies on transport or UI code.
package domain

// Dog is one adoptable-animal record returned by the search service.
// Records are immutable once fetched.
type Dog struct {
	ID      string `json:"id"`
	Img     string `json:"img"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	ZipCode string `json:"zip_code"`
	Breed   string `json:"breed"`
}

// Location is the service's postal-code record. The search view does not use it.
type Location struct {
	ZipCode   string  `json:"zip_code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	County    string  `json:"county"`
}

// SearchParams are the query parameters of a dog search. Nil pointers and
// empty slices mean "no filter on that dimension".
type SearchParams struct {
	Breeds   []string
	ZipCodes []string
	AgeMin   *int
	AgeMax   *int
	Size     *int
	From     *int
	Sort     string
}

// SearchResult is one page of matching ids plus the overall match count.
// Next and Prev are opaque cursors; the view paginates by offset instead.
type SearchResult struct {
	ResultIDs []string `json:"resultIds"`
	Total     int      `json:"total"`
	Next      string   `json:"next,omitempty"`
	Prev      string   `json:"prev,omitempty"`
}

// MatchResult carries the id the service picked from the candidate set.
type MatchResult struct {
	Match string `json:"match"`
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
