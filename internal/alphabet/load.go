package alphabet

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type alphabetFile struct {
	Alphabets map[string][]string `yaml:"alphabets"`
}

// LoadFile reads custom alphabets from a YAML file. Missing file is not an error.
func LoadFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read alphabets file: %w", err)
	}

	var file alphabetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse alphabets file: %w", err)
	}

	result := make(map[string][]string, len(file.Alphabets))
	for name, symbols := range file.Alphabets {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("alphabet with empty name")
		}
		cleaned := make([]string, 0, len(symbols))
		for _, s := range symbols {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			cleaned = append(cleaned, s)
		}
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("alphabet %q is empty", name)
		}
		result[name] = cleaned
	}
	return result, nil
}
