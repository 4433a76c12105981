package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want ExpenseCategory
	}{
		{"Food", CategoryFood},
		{"food", CategoryFood},
		{"  Shopping  ", CategoryShopping},
		{"BILLS", CategoryBills},
		{"Other", CategoryOther},
		{"groceries and stuff", CategoryOther},
		{"", CategoryOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseCategory(tc.in), "input %q", tc.in)
	}
}

func TestLookupCategoryRejectsUnknown(t *testing.T) {
	_, ok := LookupCategory("Gambling")
	assert.False(t, ok)

	c, ok := LookupCategory("bills")
	assert.True(t, ok)
	assert.Equal(t, CategoryBills, c)
}
