// Package metrics exposes Prometheus counters for validation outcomes
// (entityforms_validations_total, entityforms_field_errors_total) and HTTP
// request metrics for the form API.
package metrics
