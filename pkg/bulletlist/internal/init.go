// Package internal contains shared infrastructure for the bulletlist
// component: logging and the active host theme.
// Types and functions in this package are not part of the public API.
package internal
