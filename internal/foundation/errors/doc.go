// Package errors provides the classified error primitives used across barrelgen.
//
// A ClassifiedError carries a category (validation, state, filesystem, package, config,
// internal), a severity and structured context. Errors are built through a fluent builder
// and usually wrap a package sentinel so callers can keep using errors.Is:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "write barrel file").
//		WithContext("path", target).
//		Build()
//
// CLIErrorAdapter turns classified errors into exit codes and user-facing messages.
package errors
