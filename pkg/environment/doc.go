// Package environment names the deployment environment and carries it through
// request contexts. The HTTP API uses it to hide internal error detail in
// production.
package environment
