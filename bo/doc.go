// Package bo holds the business-object capabilities the data mappers
// recognize in raw property input.
//
// Key types:
//   - Identity: exposes a business object's primary-key value
//   - DBNull: the database-null sentinel
//   - CustomProperty: value-object property types initialized from raw input
package bo
