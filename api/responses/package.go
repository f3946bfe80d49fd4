// Package responses writes JSON success bodies and RFC 7807 problem details.
package responses
