package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTerms(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	terms := DefaultTerms(start, 7, 10.0)

	assert.Equal(t, "2025-03-10", terms.StartDate)
	assert.Equal(t, "2025-03-17", terms.EndDate)
	assert.Equal(t, int32(7), terms.TotalDays)
	assert.Equal(t, 10.0, terms.PricePerDay)
	assert.Equal(t, 70.0, terms.TotalAmount)
}

func TestDefaultTerms_CrossesMonthBoundary(t *testing.T) {
	start := time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)
	terms := DefaultTerms(start, 7, 25.5)

	assert.Equal(t, "2025-02-05", terms.EndDate)
	assert.Equal(t, 178.5, terms.TotalAmount)
}

func TestTermsForWindow(t *testing.T) {
	terms, err := TermsForWindow("2025-03-10", "2025-03-13", 100.0)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), terms.TotalDays)
	assert.Equal(t, 300.0, terms.TotalAmount)
}

func TestTermsForWindow_Invalid(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		_, err := TermsForWindow("2025-03-13", "2025-03-10", 100.0)
		assert.Error(t, err)
	})
	t.Run("zero-length window", func(t *testing.T) {
		_, err := TermsForWindow("2025-03-10", "2025-03-10", 100.0)
		assert.Error(t, err)
	})
	t.Run("bad date format", func(t *testing.T) {
		_, err := TermsForWindow("03/10/2025", "2025-03-13", 100.0)
		assert.Error(t, err)
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-01")
	assert.NoError(t, err)
	assert.Equal(t, time.December, d.Month())

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}
