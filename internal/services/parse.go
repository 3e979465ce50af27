// Package services contains the application services of FinanzApp: identity
// and session handling, the per-collection CRUD operations scoped to the
// current user, profile upserts, and the dashboard aggregates. Services
// return sentinel errors from internal/shared; the front-end maps them to
// user-facing messages.
package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dcastano/finanzapp/internal/shared"
)

const dateLayout = "2006-01-02"

// parseAmount converts a raw form value into a non-negative amount.
// Anything that does not parse to a finite, non-negative number is a
// validation error; invalid input never propagates as NaN.
func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: amount is required", shared.ErrValidation)
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q is not a valid amount", shared.ErrValidation, raw)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: amount cannot be negative", shared.ErrValidation)
	}
	return amount, nil
}

// parseOptionalAmount treats an empty value as zero.
func parseOptionalAmount(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return parseAmount(raw)
}

// parseDate validates a calendar date in YYYY-MM-DD form.
func parseDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", fmt.Errorf("%w: %q is not a valid date (expected YYYY-MM-DD)", shared.ErrValidation, raw)
	}
	return raw, nil
}
