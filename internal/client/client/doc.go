// Package client contains the transport layer of the reporting client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): bulk CSV
//     upload, job status lookup, single report submission, and the monthly
//     dashboard query.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that joins routes
//     onto a configured base URL, tags each request with an X-Request-ID
//     header, and maps non-2xx answers to *TransportError.
//
// # Error Handling
//
// Every failure to obtain a 2xx answer is a *TransportError, which also
// matches common.ErrTransport with errors.Is. StatusCode is 0 when no
// response was received at all. UserMessage turns any error into the text a
// user should see.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation.
package client
