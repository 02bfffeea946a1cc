package country

import (
	"slices"
	"strings"
)

// SortOrder names a listing order accepted by the API.
type SortOrder string

const (
	SortNone    SortOrder = ""
	SortGDPAsc  SortOrder = "gdp_asc"
	SortGDPDesc SortOrder = "gdp_desc"
)

// ParseSortOrder maps a query value to a SortOrder.
// Unknown values keep storage order.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortGDPAsc, SortGDPDesc:
		return SortOrder(s)
	default:
		return SortNone
	}
}

// Filter holds the optional listing criteria.
type Filter struct {
	Region   string
	Currency string
	Sort     SortOrder
}

// Apply returns the countries matching f, in the requested order.
// The input slice is not modified.
func (f Filter) Apply(countries []*Country) []*Country {
	out := make([]*Country, 0, len(countries))
	for _, c := range countries {
		if f.Region != "" && !strings.EqualFold(c.Region, f.Region) {
			continue
		}
		if f.Currency != "" && (c.CurrencyCode == nil || !strings.EqualFold(*c.CurrencyCode, f.Currency)) {
			continue
		}
		out = append(out, c)
	}

	switch f.Sort {
	case SortGDPAsc:
		SortByGDP(out, false)
	case SortGDPDesc:
		SortByGDP(out, true)
	}
	return out
}

// SortByGDP orders countries by estimated GDP in place.
// Countries without an estimate always go last, in their original relative order.
func SortByGDP(countries []*Country, desc bool) {
	slices.SortStableFunc(countries, func(a, b *Country) int {
		switch {
		case a.EstimatedGDP == nil && b.EstimatedGDP == nil:
			return 0
		case a.EstimatedGDP == nil:
			return 1
		case b.EstimatedGDP == nil:
			return -1
		}
		cmp := compareInt64(*a.EstimatedGDP, *b.EstimatedGDP)
		if desc {
			return -cmp
		}
		return cmp
	})
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
