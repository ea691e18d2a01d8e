// Package check loads YAML files of data mapper expectations and runs them
// against a mapper.Factory.
//
// # Schema Overview
//
//	version: "1"
//	checks:
//	  - kind: guid
//	    input: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
//	    expect: "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}"
//	  - kind: long
//	    input: ["1", " 2 "]        # several inputs, same expectation
//	    expect: ["1", "2"]         # one expectation per input, or a single one
//	  - kind: bool
//	    input: notabool
//	    fail: true                 # TryParsePropValue must report ok=false
//	  - kind: int
//	    input: ~                   # null input
//	    expect: ""
//
// expect is compared with ConvertValueToString of the parsed value. A check
// with neither expect nor fail only asserts that parsing succeeds.
package check
