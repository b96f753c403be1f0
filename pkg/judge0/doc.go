// Package judge0 provides a typed client for a Judge0-compatible remote
// code-execution service. It covers the language and status catalogs,
// single and batched submission create/read/delete, and the service
// health endpoints (about, workers).
//
// The remote service owns sandboxing, queueing, and resource limiting.
// This package is purely the boundary layer: it builds well-formed
// requests from a Config, decodes JSON responses into typed values, and
// classifies failures into a small error taxonomy. It never polls,
// retries, or interprets HTTP status codes on the caller's behalf —
// service-reported validation errors come back as ordinary result data.
package judge0
