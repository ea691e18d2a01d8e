package check

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNoChecks = errors.New("check file has no checks")

// LoadFile loads and parses a YAML check file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read check file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse check YAML: %w", err)
	}

	if len(f.Checks) == 0 {
		return nil, ErrNoChecks
	}

	applyDefaults(&f)

	return &f, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Checks {
		if f.Checks[i].Input == nil {
			f.Checks[i].Input = Inputs{nil}
		}
	}
}
