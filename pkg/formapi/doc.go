// Package formapi exposes the entity registry as a JSON API:
//
//	GET  /v1/entities                   registered kinds
//	GET  /v1/entities/{kind}            field description of one kind
//	POST /v1/entities/{kind}/validate   validate a JSON object
//	GET  /healthz                       readiness of the registry
//	GET  /metrics                       Prometheus metrics, when configured
//
// A valid payload answers 200 with {"data": <normalized record>}. An invalid
// one answers 422 with every field error, messages localized for the request
// language (?lang= or Accept-Language):
//
//	{"error": {"code": "validation_error", "message": "...",
//	  "details": {"name.ar": ["..."]},
//	  "fields": [{"field": "name.ar", "message": "...", "key": "validation.required"}]}}
//
// Unknown kinds answer 404 unknown_entity_kind, malformed bodies 400
// invalid_json, and non-JSON content types 415.
package formapi
