// Package utils provides general-purpose helper utilities used across
// bitable-schema: the resty-based HTTP client and request ID generation.
package utils
