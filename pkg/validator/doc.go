// Package validator provides small, composable validation rules.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// implements error and survives wrapping, so callers can join it with their
// own sentinel and still recover the field details with errors.As or
// ExtractValidationErrors:
//
//	err := validator.Apply(
//		validator.RequiredString("email", email),
//		validator.ValidEmail("email", email),
//		validator.MaxLenString("password", password, 1024),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		details := verrs.Map()
//	}
//
// Rules are plain values with no shared state and are safe for concurrent use.
package validator
