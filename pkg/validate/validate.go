package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bidmart/bidengine/internal/domain"
)

var v = validator.New()

// Struct validates request DTOs by their `validate` tags.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// IsProposal reports whether the proposal text carries anything but whitespace.
func IsProposal(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsDecision reports whether s is a terminal response an administrator may
// assign. Pending is not a decision.
func IsDecision(s string) bool {
	return s == domain.ApprovedResponse || s == domain.RejectedResponse
}

// IsAmount reports whether a payment amount is acceptable for the ledger.
func IsAmount(amount int64) bool {
	return amount > 0
}
