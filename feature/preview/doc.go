// Package preview implements the local preview server for the static pages.
//
// The server is a Fiber static file handler over a document root, wrapped
// with a request id, a request serializer and a one-line-per-request access
// log. Run binds the listener, best-effort opens the entry page in the
// browser and serves until its context is cancelled.
//
// # Lifecycle
//
//	INIT → BOUND → SERVING → (STOPPED | FAILED)
//
// A missing document root fails New with ErrRootNotFound; a bind failure
// fails Run. Neither is retried.
package preview
