// Package client contains the agent terminal's API surface towards the Tax
// Free platform backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Login and
//     token refresh, Ping, online form lookup and decide, and the offline
//     batch sync endpoint.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     access token to outbound requests, transparently refreshes an expired
//     token once, and maps HTTP statuses to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrServer.
// Transport-level failures (DNS, refused connection, timeout) all map to
// ErrUnavailable, which is what gates the offline mode.
package client
