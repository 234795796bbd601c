// Package errors provides structured error types for better observability
// and programmatic error handling across barplan.
//
// The scoring core never returns errors; these types are used at the data
// boundary (model constructors, catalog loading, configuration) and by the
// planner and CLI.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "invalid ingredient quantity",
//	    cause,
//	    map[string]any{
//	        "recipe": recipeID,
//	        "ingredient": name,
//	    },
//	)
package errors
