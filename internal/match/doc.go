// Package match ranks names by similarity to suggest the closest one when a
// lookup by name fails.
//
// Names are compared after normalization:
//   - CamelCase, snake_case and kebab-case spellings normalize alike
//   - comparison is case-insensitive
//   - similarity is 1 minus the edit distance over the longer length
package match
