// Package analyze loads Go packages and extracts enum-like constant sets:
// named types with a basic underlying type and the exported constants
// declared of that type.
//
// It uses golang.org/x/tools/go/packages with go/types, so the scanned
// packages must compile. Render turns the result into Go source that
// registers every set with mapper.RegisterEnum.
//
// Key types:
//   - TypeID: package import path + type name
//   - EnumInfo: the members of one enum type, in declaration order
//   - EnumSet: all enums found in the loaded packages
package analyze
