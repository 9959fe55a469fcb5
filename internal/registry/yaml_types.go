package registry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringOrArray accepts either a single string or a list of strings.
// null and "" decode to an empty list.
type StringOrArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}
		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}
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

// typeFile is the on-disk layout of a type table.
type typeFile struct {
	Types   map[string]typeSpec `yaml:"types"`
	Ignored []string            `yaml:"ignored"`
}

type typeSpec struct {
	Name     string        `yaml:"name"`
	Group    string        `yaml:"group"`
	Icon     string        `yaml:"icon"`
	Username StringOrArray `yaml:"username"`
	Password StringOrArray `yaml:"password"`
}
