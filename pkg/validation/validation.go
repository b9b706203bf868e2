package validation

import (
	"fmt"
	"math"
)

// Result is the outcome of a domain validation. Validators never panic;
// an out-of-range input produces Valid=false with a human-readable Error.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(format string, args ...any) Result {
	return Result{Valid: false, Error: fmt.Sprintf(format, args...)}
}

// Positive checks that a value is not negative.
func Positive(value float64, fieldName string) Result {
	if fieldName == "" {
		fieldName = "Value"
	}
	if value < 0 {
		return fail("%s cannot be negative", fieldName)
	}
	return ok()
}

// Percentage checks that a value lies in [0, 100].
func Percentage(value float64, fieldName string) Result {
	if fieldName == "" {
		fieldName = "Percentage"
	}
	if value < 0 || value > 100 {
		return fail("%s must be between 0 and 100", fieldName)
	}
	return ok()
}

// InterestRate checks that an annual interest rate lies in the realistic [0, 50] range.
func InterestRate(value float64) Result {
	if value < 0 || value > 50 {
		return fail("Interest rate must be between 0%% and 50%%")
	}
	return ok()
}

// Tenure checks that a loan tenure lies in [1, 600] months.
func Tenure(months int) Result {
	if months <= 0 || months > 600 {
		return fail("Tenure must be between 1 and 600 months")
	}
	return ok()
}

// Affordable checks that a monthly payment stays within 40% of monthly income.
// The computed ratio is embedded in the failure message.
func Affordable(monthlyPayment, monthlyIncome float64) Result {
	ratio := SafeCalculate(func() float64 {
		return monthlyPayment / monthlyIncome * 100
	}, 0)
	if ratio > 40 {
		return fail("EMI-to-income ratio (%.1f%%) exceeds safe limit of 40%%", ratio)
	}
	return ok()
}

// DebtToIncome checks that total debt stays within 60% of annual income.
func DebtToIncome(totalDebt, monthlyIncome float64) Result {
	ratio := SafeCalculate(func() float64 {
		return totalDebt / (monthlyIncome * 12) * 100
	}, 0)
	if ratio > 60 {
		return fail("Debt-to-income ratio (%.1f%%) exceeds safe limit of 60%%", ratio)
	}
	return ok()
}

// SavingsTarget checks that a monthly savings target does not exceed 70% of income.
func SavingsTarget(target, income float64) Result {
	if target > income*0.7 {
		return fail("Savings target cannot exceed 70%% of monthly income")
	}
	return ok()
}

// Amount checks that a value is a finite number greater than zero.
func Amount(amount float64, fieldName string) Result {
	if fieldName == "" {
		fieldName = "Amount"
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fail("%s must be a valid number", fieldName)
	}
	if amount <= 0 {
		return fail("%s must be greater than 0", fieldName)
	}
	return ok()
}
