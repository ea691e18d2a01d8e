// Package parse provides the text parsing utilities the data mappers
// delegate to.
//
// Key functions:
//   - Bool: configurable true/false literals, integer flags, bool passthrough
//   - DateTime: keywords (now, today, yesterday, tomorrow), configured
//     layouts, then the broad layout list of github.com/spf13/cast
package parse
