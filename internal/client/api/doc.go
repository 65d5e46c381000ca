// Package api is the fetch/mutate gateway between the client application and
// the portfolio backend's REST surface.
//
// It exposes a transport-agnostic Client interface plus the HTTP
// implementation. All failures leaving this package are classified into
// exactly one of four kinds (ErrUnavailable, ErrAuthRequired, ErrValidation,
// ErrServerFault) with a user-facing message; nothing above this layer sees
// status codes or transport errors. The gateway never retries.
package api
