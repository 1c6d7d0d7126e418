// Package utils holds small helpers shared across transport layers: JSON
// response writing, the outbound HTTP client wrapper and user ID generation.
package utils
