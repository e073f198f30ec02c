// Package validator composes small, declarative validation rules.
//
//	err := validator.Apply(
//		validator.RequiredString("email", email),
//		validator.MaxLenString("email", email, 254),
//		validator.ValidEmail("email", email),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//		// ve.Get("email") lists the failed messages.
//	}
//
// Rules are evaluated eagerly in order and all failures are collected.
package validator
