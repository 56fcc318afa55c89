// Package validation provides custom validation rules for the application.
package validation

import (
	"time"

	validation "github.com/jellydator/validation"
)

// DateLayout is the wire format for service dates.
const DateLayout = "2006-01-02"

// ISODate validates that a string is a calendar date in YYYY-MM-DD form.
var ISODate = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_date_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return validation.NewError("validation_date", "must be a valid date in YYYY-MM-DD format")
	}
	return nil
})
