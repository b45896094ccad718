// Package errs defines the application error taxonomy.
//
// Every failure the API wants a client to see carries an HTTP status and a
// message in an *HTTPError. Anything else is considered unrecognized and is
// flattened to a generic 500 by Translate.
package errs
