/*
Package observability exposes Prometheus collectors for the dashboard.

Metrics are registered on a caller-supplied registerer so tests and embedded
hosts can use their own registry. The engine feeds transition metrics through
lifecycle hooks; the HTTP adapter records request metrics through middleware.
*/
package observability
