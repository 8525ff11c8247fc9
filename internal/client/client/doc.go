// Package client is the HR backend gateway used by the CLI.
//
// # Overview
//
//  1. Client is the transport-agnostic contract the sync coordinator depends
//     on: health probe, employee and attendance CRUD, departments and the
//     dashboard aggregate.
//  2. HTTPClient implements it over the backend's JSON API, translating
//     records with package normalize.
//
// # Endpoint resolution
//
// The base URL given to NewHTTPClient (normally the build-time value) wins;
// otherwise the settings URL supplied via WithSettingsURL is read on every
// call. With neither, the gateway is "not configured" and every call returns
// an empty result without touching the network. This is how the CLI runs in
// local-only mode.
//
// # Error Handling
//
// HealthCheck never fails; it returns false. Other calls return:
//   - ErrUnavailable (wrapped) for transport failures and timeouts,
//   - *HTTPError for non-2xx answers, carrying the response body,
//   - ErrMalformedResponse (wrapped) for undecodable 2xx bodies.
//
// Timeouts default to 4s for the health probe and 8s for everything else.
package client
