package check

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is a check file.
type File struct {
	Version string  `yaml:"version,omitempty"`
	Checks  []Check `yaml:"checks"`
}

// Check is one expectation against a mapper kind.
type Check struct {
	Kind   string        `yaml:"kind"`
	Input  Inputs        `yaml:"input"`
	Expect StringOrArray `yaml:"expect,omitempty"`
	Fail   bool          `yaml:"fail,omitempty"`
	// HasExpect is set when the expect key is present, so that `expect: ""`
	// is distinguishable from no expectation.
	HasExpect bool `yaml:"-"`
}

// Inputs are raw inputs; YAML null becomes a nil input.
type Inputs []any

// StringOrArray accepts either a single string or an array of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for Inputs.
func (in *Inputs) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*in = Inputs{scalar(node)}
		return nil

	case yaml.SequenceNode:
		out := make(Inputs, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected scalar input, got %v", item.Line, item.Kind)
			}
			out = append(out, scalar(item))
		}
		*in = out
		return nil

	default:
		return fmt.Errorf("line %d: expected scalar or array input, got %v", node.Line, node.Kind)
	}
}

func scalar(node *yaml.Node) any {
	if node.ShortTag() == "!!null" {
		return nil
	}

	return node.Value
}

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = StringOrArray{node.Value}
		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}
		*s = arr
		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// UnmarshalYAML records whether expect was given.
func (c *Check) UnmarshalYAML(node *yaml.Node) error {
	type plain Check

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*c = Check(p)

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "expect" {
			c.HasExpect = true
		}
	}

	return nil
}

// ExpectFor returns the expectation for the i-th input.
func (c *Check) ExpectFor(i int) (string, bool) {
	switch {
	case !c.HasExpect:
		return "", false
	case len(c.Expect) == 0:
		return "", true
	case len(c.Expect) == 1:
		return c.Expect[0], true
	case i < len(c.Expect):
		return c.Expect[i], true
	default:
		return "", false
	}
}
