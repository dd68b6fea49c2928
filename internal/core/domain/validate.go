package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength  = 50
	MaxTitleLength = 100

	// DefaultReviewTextMax is the review text cap applied when none is configured.
	DefaultReviewTextMax = 500

	MinRating = 1
	MaxRating = 5
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func requiredMax(field, label, value string, max int) error {
	if strings.TrimSpace(value) == "" || utf8.RuneCountInString(value) > max {
		return NewValidationError(field, fmt.Sprintf("%s is required and must be %d characters max", label, max))
	}
	return nil
}

func ValidateFirstName(v string) error {
	return requiredMax("first_name", "First name", v, MaxNameLength)
}

func ValidateLastName(v string) error {
	return requiredMax("last_name", "Last name", v, MaxNameLength)
}

func ValidateEmail(v string) error {
	if !emailPattern.MatchString(v) {
		return NewValidationError("email", "Invalid email format")
	}
	return nil
}

func ValidateAmenityName(v string) error {
	return requiredMax("name", "Name", v, MaxNameLength)
}

func ValidateTitle(v string) error {
	return requiredMax("title", "Title", v, MaxTitleLength)
}

func ValidatePrice(v float64) error {
	if v < 0 || v != v {
		return NewValidationError("price", "Price must be a non-negative number")
	}
	return nil
}

func ValidateLatitude(v float64) error {
	if !(v >= -90 && v <= 90) {
		return NewValidationError("latitude", "Latitude must be between -90 and 90")
	}
	return nil
}

func ValidateLongitude(v float64) error {
	if !(v >= -180 && v <= 180) {
		return NewValidationError("longitude", "Longitude must be between -180 and 180")
	}
	return nil
}

// ValidateReference checks that a foreign-key field carries an id. Existence
// is checked by the facade, which owns the other repositories.
func ValidateReference(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewValidationError(field, field+" is required")
	}
	return nil
}

// ValidateReviewText enforces non-empty text and, when max > 0, a length cap.
func ValidateReviewText(v string, max int) error {
	if strings.TrimSpace(v) == "" {
		return NewValidationError("text", "Text is required")
	}
	if max > 0 && utf8.RuneCountInString(v) > max {
		return NewValidationError("text", fmt.Sprintf("Text must be %d characters max", max))
	}
	return nil
}

func ValidateRating(v int) error {
	if v < MinRating || v > MaxRating {
		return NewValidationError("rating", "Rating must be an integer between 1 and 5")
	}
	return nil
}

// firstError returns the first non-nil error, preserving check order.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
