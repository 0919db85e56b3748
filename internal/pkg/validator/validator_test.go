package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-02-01")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("2024-2-1")
	assert.False(t, ok)

	_, ok = IsValidDate("01/02/2024")
	assert.False(t, ok)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "startDate", Message: "bad format"},
		{Field: "endDate", Message: "bad format"},
	}
	assert.Equal(t, "startDate: bad format; endDate: bad format", errs.Error())
	assert.Equal(t, map[string]string{
		"startDate": "bad format",
		"endDate":   "bad format",
	}, errs.ToMap())
}
