// Package validation binds request data and validates it.
//
// Payloads declare their rules with `validate` struct tags and expose a
// Validate method. Failures come back as a 400 *errs.HTTPError whose message
// names every offending field.
package validation
