// Package errs defines the application error taxonomy: not-found, unauthorized,
// conflict and validation failures. Each typed error wraps a package sentinel so
// callers classify failures with errors.Is, while the concrete types carry the
// parameter names and causes operators need in logs.
//
// The transport layer maps these categories to response codes; messages exposed
// to callers never include internal detail such as query text or stack traces.
package errs
