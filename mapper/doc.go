// Package mapper converts raw business-object property input into typed
// values and renders typed values back to display text.
//
// Every Go type a property can hold has one DataMapper. A Factory resolves
// the mapper for a reflect.Type: the built-in kinds (see package primitive)
// are registered eagerly, any other type gets a GeneralDataMapper on first
// request which is then cached.
//
// # Failure tiers
//
// TryParsePropValue reports ok=false when a mapper cannot represent the
// input; callers surface that as a validation message. A non-nil error is
// returned only by GeneralDataMapper, when no specific handling exists and
// generic coercion fails, or when an enum member name or a custom property
// initializer rejects the input.
//
// # Null input
//
// nil, the empty string, bo.DBNull, nil pointers and invalid database/sql
// nullables all parse to (nil, true, nil) and format as "".
//
// # Configuration-time registries
//
// GeneralDataMapper does not discover conversions at runtime. Type
// converters and enum member names are registered up front in Converters
// and Enums, usually the ones owned by the Factory:
//
//	f := mapper.NewFactory()
//	mapper.RegisterEnum(f.Enums(), map[string]Color{"Red": Red, "Green": Green})
//	mapper.RegisterConverter(f.Converters(), func(s string) (Money, error) { ... })
//	m, err := mapper.MapperFor[Color](f)
package mapper
