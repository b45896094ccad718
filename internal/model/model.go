// Package model holds the records served by the listing endpoints.
//
// Records are plain values: they are generated for a single request,
// serialized and thrown away. Nothing here is persisted.
package model
