// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnreadable,
//	    "failed to read descriptor file",
//	    readErr,
//	    map[string]interface{}{
//	        "path": path,
//	        "vm":   vmName,
//	    },
//	)
package errors
