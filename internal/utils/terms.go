package utils

import (
	"fmt"
	"time"
)

// DateLayout is the yyyy-mm-dd wire format used for rental windows.
const DateLayout = "2006-01-02"

// RentalTerms captures the agreed window and price snapshot of a request.
// TotalAmount is always PricePerDay * TotalDays so the request record is
// self-contained even if the equipment price changes later.
type RentalTerms struct {
	StartDate   string
	EndDate     string
	TotalDays   int32
	PricePerDay float64
	TotalAmount float64
}

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %v", err)
	}
	return t, nil
}

// DefaultTerms builds the standard rental window: days days starting at
// start's calendar date.
func DefaultTerms(start time.Time, days int, pricePerDay float64) RentalTerms {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end := startDay.AddDate(0, 0, days)
	return RentalTerms{
		StartDate:   startDay.Format(DateLayout),
		EndDate:     end.Format(DateLayout),
		TotalDays:   int32(days),
		PricePerDay: pricePerDay,
		TotalAmount: pricePerDay * float64(days),
	}
}

// TermsForWindow builds terms for an explicit start/end window.
func TermsForWindow(startStr, endStr string, pricePerDay float64) (RentalTerms, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return RentalTerms{}, fmt.Errorf("invalid start date: %v", err)
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return RentalTerms{}, fmt.Errorf("invalid end date: %v", err)
	}

	days := int32(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return RentalTerms{}, fmt.Errorf("end date must be after start date")
	}

	return RentalTerms{
		StartDate:   start.Format(DateLayout),
		EndDate:     end.Format(DateLayout),
		TotalDays:   days,
		PricePerDay: pricePerDay,
		TotalAmount: pricePerDay * float64(days),
	}, nil
}
