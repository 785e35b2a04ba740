// Package validation provides struct tag validation backed by
// go-playground/validator. Failures are returned as *errors.AppError with
// code INVALID_INPUT and per-field details.
//
//	type Query struct {
//	    City string `json:"city" validate:"notblank,max=128"`
//	}
//	err := validation.Validate(q)
package validation
