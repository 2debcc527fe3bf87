// Package utils provides small helpers shared across the application:
// filename and extension handling, content-type checks, and slice transforms.
package utils
