// Package errs provides standardized error types for the back-office application.
// Every error type follows the same shape so handlers can classify failures with
// errors.Is and errors.As regardless of which layer produced them.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a referenced record does not exist
//   - ConflictError: a record changed between read and write
//   - StoreUnavailableError: the backing store could not be reached
//   - DataIsCorruptedError: a stored record failed domain validation on load
//
// Each error type has a sentinel (e.g. ErrConflict), a struct carrying details,
// constructors with and without cause, and an Unwrap method exposing the sentinel.
package errs
