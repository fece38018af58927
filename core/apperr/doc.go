// Package apperr defines the application's error taxonomy.
//
// Four error classes cross the core's public contract:
//
//   - UpstreamUnavailable (503): an external feed was unreachable or returned
//     a non-success payload. Aborts a refresh run as a whole.
//   - NotFound (404): a requested country name has no exact match.
//   - ValidationFailed (400): malformed query parameters, with per-field detail.
//   - Internal (500): any unexpected storage or logic failure. The caller only
//     sees a generic message; the cause is logged in full.
//
// Wrap converts arbitrary errors at the contract boundary: taxonomy errors
// pass through unchanged, everything else becomes Internal. NewFiberHandler
// translates the taxonomy into HTTP responses.
package apperr
