package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

func TestParseFilters_UnknownOperator(t *testing.T) {
	_, err := ParseFilters(map[string]string{"date__bogus": "x"})
	assert.Error(t, err)
	assert.True(t, financeErrors.IsFilterError(err))
	assert.Contains(t, err.Error(), "bogus")
}

func TestParseFilters_MissingOperator(t *testing.T) {
	_, err := ParseFilters(map[string]string{"nooperator": "x"})
	assert.Error(t, err)
	assert.True(t, financeErrors.IsFilterError(err))
	assert.Contains(t, err.Error(), "no operator")
}

func TestParseFilters_UnknownField(t *testing.T) {
	_, err := ParseFilters(map[string]string{"password__eq": "x"})
	assert.Error(t, err)
	assert.True(t, financeErrors.IsFilterError(err))
}

func TestParseFilters_EmptyInList(t *testing.T) {
	_, err := ParseFilters(map[string]string{"kind__in": "  "})
	assert.Error(t, err)
	assert.True(t, financeErrors.IsFilterError(err))
}

func TestParseFilters_AllOperators(t *testing.T) {
	filters, err := ParseFilters(map[string]string{
		"amount__gte":        "10",
		"amount__lte":        "500",
		"date__gt":           "2024-01-01",
		"date__lt":           "2024-12-31",
		"description__ilike": "%market%",
		"description__like":  "%Market%",
		"kind__eq":           "credit",
		"kind__in":           "credit,debit",
	})
	assert.NoError(t, err)
	assert.Len(t, filters, 8)

	// Keys come back sorted, so identical input yields identical output.
	assert.Equal(t, Filter{Field: "amount", Op: FilterGte, Value: "10"}, filters[0])
	assert.Equal(t, Filter{Field: "kind", Op: FilterIn, Value: "credit,debit"}, filters[7])
}

func TestParseFilters_Empty(t *testing.T) {
	filters, err := ParseFilters(nil)
	assert.NoError(t, err)
	assert.Nil(t, filters)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
}
