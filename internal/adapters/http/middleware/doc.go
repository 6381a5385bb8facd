// Package middleware holds the net/http middleware installed on the API
// router. cmd/server applies them outermost first:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
//
// Every middleware that needs the response status wraps the writer with
// chi's WrapResponseWriter.
package middleware
