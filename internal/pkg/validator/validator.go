// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers:
//
//   - amount: a non-negative decimal string such as "12" or "0.5"
//   - bech32: a bech32 string whose human-readable part equals the tag param (e.g. bech32=fra)
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sync"

	"github.com/btcsuite/btcd/btcutil/bech32"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is returned as the first error in a multi-error chain when validation fails.
var ErrValidation = errors.New("validation error")

var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// amountPattern matches "1", "1.5", ".5" and "1." style decimal amounts.
var amountPattern = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// errStringFormat defines the template used to describe individual validation errors.
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init builds the shared validator and registers the custom tags. It is safe to
// call more than once; Validate calls it on first use.
func Init() {
	initValidatorOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
		_ = validator.RegisterValidation("amount", validateAmount)
		_ = validator.RegisterValidation("bech32", validateBech32)
	})
}

func validateAmount(fl gvalidator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	return amountPattern.MatchString(fl.Field().String())
}

func validateBech32(fl gvalidator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	hrp, _, err := bech32.Decode(fl.Field().String())
	if err != nil {
		return false
	}

	return fl.Param() == "" || hrp == fl.Param()
}

// formatError transforms a raw validator error into a human-readable
// multi-error chain rooted at ErrValidation. Other errors are returned as is.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// Example usage:
//
//	type Receiver struct {
//	    Address string `validate:"required,bech32=fra"`
//	    Amount  string `validate:"required,amount"`
//	}
//
//	if err := validator.Validate(r); errors.Is(err, validator.ErrValidation) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
