// Package transport executes JSON requests against the identity provider and
// classifies the outcome.
//
// A call either returns the decoded top-level JSON object or exactly one of:
//
//   - *TransportError: the request never produced a complete response
//     (DNS, connect, TLS, timeout). Never retried.
//   - *InvalidResponseError: the body is not a JSON object, whatever the status.
//   - *APIError: status >= 400 with a JSON object body. Message is taken from
//     the body's "message" field, else "error_description", else
//     UnknownErrorMessage.
//
// Body decoding happens before status classification, so a 500 with an HTML
// body is an InvalidResponseError, not an APIError.
//
// The package neither logs nor retries. Callers decide what to do with each
// error kind, typically with errors.As.
package transport
