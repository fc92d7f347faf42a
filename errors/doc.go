// Package errors provides standardized error handling patterns for inventory components.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input or business-rule
// violation, non-retryable), and Fatal (unrecoverable, stop processing).
//
// The classification system integrates with Go's standard error handling
// patterns, supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if _, exists := catalog[id]; exists {
//	    return errors.ErrDuplicateID
//	}
//
// Wrap errors with context for debugging:
//
//	if err := os.WriteFile(path, data, 0o644); err != nil {
//	    return errors.WrapTransient(err, "filestore", "Save", "write snapshot")
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")  // For retryable errors
//	errors.WrapInvalid(err, "Component", "Method", "action")    // For validation errors
//	errors.WrapFatal(err, "Component", "Method", "action")      // For unrecoverable errors
//
// The generic Wrap() function adds context without forcing a class:
//
//	errors.Wrap(err, "Component", "Method", "action")
//
// # Standard Error Variables
//
// The package provides pre-defined error variables for the domain's failure
// modes, organized by category:
//
//   - Argument and identity: ErrInvalidArgument, ErrDuplicateID, ErrNotFound
//   - Stock quantities: ErrInsufficientStock, ErrQuantityOverflow
//   - Snapshots and persistence: ErrMalformedRecord, ErrStorageUnavailable
//
// Use these variables instead of creating custom error messages so callers
// can branch on errors.Is() rather than string matching.
//
// # Integration with errors.As/Is
//
//	// Check for specific standard errors
//	if errors.Is(err, errors.ErrInsufficientStock) {
//	    // Reject the order, keep the catalog untouched
//	}
//
//	// Check error classification
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access. The ClassifiedError type is
// safe to share across goroutines after creation.
package errors
