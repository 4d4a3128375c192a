package domain

import "slices"

// BuildSearchParams derives the search request for filter on page:
// breeds only when some are selected, age bounds only when set (after policy),
// sort "breed:<order>", size PageSize and from (page-1)*PageSize.
func BuildSearchParams(filter Filter, page int, policy AgeRangePolicy) SearchParams {
	params := SearchParams{
		Sort: SortParam(filter.Sort),
		Size: IntPtr(PageSize),
		From: IntPtr(Offset(page)),
	}
	if len(filter.Breeds) > 0 {
		params.Breeds = slices.Clone(filter.Breeds)
	}
	age := filter.Age.Normalize(policy)
	if age.Min != nil {
		params.AgeMin = IntPtr(*age.Min)
	}
	if age.Max != nil {
		params.AgeMax = IntPtr(*age.Max)
	}
	return params
}
