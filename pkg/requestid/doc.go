// Package requestid attaches a correlation id to every HTTP request. A valid
// client-supplied X-Request-ID (letters, digits, '-' and '_', at most 128
// bytes) is kept; anything else is replaced by a fresh UUID.
package requestid
