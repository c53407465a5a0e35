// Package errs provides the error types shared by the LogiFlow service.
//
// Every type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) returned by Unwrap
//   - a struct carrying the details (parameter name, offending value)
//   - a constructor; ValueIsInvalidError and StorageUnavailableError also carry a cause
//
// The HTTP layer classifies errors with errors.Is against the sentinels:
// validation sentinels become 422, ErrObjectNotFound becomes 404 and
// ErrStorageUnavailable becomes 503.
package errs
