// Package diagnostic provides structured results of data mapper checks.
//
// Key capabilities:
//   - Failed expectations with the kind and input that produced them
//   - Warnings for checks that could not be evaluated as written
//   - A combined error for command-line exit status
package diagnostic
