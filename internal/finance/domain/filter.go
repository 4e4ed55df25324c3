package domain

import (
	"sort"
	"strings"

	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

// FilterOp is the comparison applied by a single filter.
type FilterOp int

const (
	FilterEq FilterOp = iota
	FilterIn
	FilterLike
	FilterILike
	FilterGt
	FilterLt
	FilterGte
	FilterLte
)

var filterOps = map[string]FilterOp{
	"eq":    FilterEq,
	"in":    FilterIn,
	"like":  FilterLike,
	"ilike": FilterILike,
	"gt":    FilterGt,
	"lt":    FilterLt,
	"gte":   FilterGte,
	"lte":   FilterLte,
}

// filterableFields are the transaction attributes a caller may filter on.
// Anything else is rejected rather than interpolated into SQL.
var filterableFields = map[string]struct{}{
	"description":    {},
	"amount":         {},
	"date":           {},
	"recurring_day":  {},
	"is_fixed":       {},
	"is_revenue":     {},
	"kind":           {},
	"category_id":    {},
	"credit_card_id": {},
}

// Filter is one parsed `<field>__<operator>` condition. All filters on a
// query combine as a logical AND.
type Filter struct {
	Field string
	Op    FilterOp
	Value string
}

// ParseFilters translates the wire filter map into typed filters. Keys must
// be of the form `<field>__<operator>`; a missing separator, an unknown
// operator or a non-filterable field fails with a FilterError. Keys are
// processed in sorted order so identical input yields identical output.
func ParseFilters(raw map[string]string) ([]Filter, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	filters := make([]Filter, 0, len(keys))
	for _, key := range keys {
		field, opName, found := strings.Cut(key, "__")
		if !found {
			return nil, financeErrors.NewFilterError("no operator specified for field '%s'", key)
		}
		op, ok := filterOps[opName]
		if !ok {
			return nil, financeErrors.NewFilterError("invalid operator '%s' for field '%s'", opName, field)
		}
		if _, ok := filterableFields[field]; !ok {
			return nil, financeErrors.NewFilterError("field '%s' is not filterable", field)
		}
		if op == FilterIn && strings.TrimSpace(raw[key]) == "" {
			return nil, financeErrors.NewFilterError("empty value list for field '%s'", field)
		}
		filters = append(filters, Filter{Field: field, Op: op, Value: raw[key]})
	}
	return filters, nil
}
