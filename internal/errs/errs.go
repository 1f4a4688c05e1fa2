// Package errs defines the catalog's error taxonomy and the HTTP error
// shapes returned to API clients.
//
// Two layers live here:
//   - Error/Kind: the domain taxonomy every repository and service method
//     returns (invalid value, not found, duplicate name, dangling reference,
//     pool exhausted, ...). Callers branch on Kind via errors.Is or KindOf.
//   - HTTPError/FieldError: the JSON response schema the global error
//     handler serializes for clients.
//
// The mapping between the two happens once, in the middleware global error
// handler, so repositories and services never deal in HTTP statuses.
package errs
