package persona

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptySet      = errors.New("persona set is empty")
	ErrDuplicateName = errors.New("duplicate persona name")
	ErrBlankField    = errors.New("persona name and prompt are required")
)

// Persona is a named role whose prompt frames one generation request
type Persona struct {
	Name   string `json:"name" yaml:"name"`
	Prompt string `json:"-" yaml:"prompt"`
}

// Set is an ordered, immutable collection of personas.
// The order defines the order of results in every report.
type Set struct {
	personas []Persona
}

// New validates the list and returns a Set preserving its order
func New(list []Persona) (*Set, error) {
	if len(list) == 0 {
		return nil, ErrEmptySet
	}

	seen := make(map[string]struct{}, len(list))
	personas := make([]Persona, 0, len(list))
	for i, p := range list {
		p.Name = strings.TrimSpace(p.Name)
		p.Prompt = strings.TrimSpace(p.Prompt)
		if p.Name == "" || p.Prompt == "" {
			return nil, fmt.Errorf("persona %d: %w", i, ErrBlankField)
		}
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
		}
		seen[p.Name] = struct{}{}
		personas = append(personas, p)
	}

	return &Set{personas: personas}, nil
}

// All returns a copy of the personas in configured order
func (s *Set) All() []Persona {
	out := make([]Persona, len(s.personas))
	copy(out, s.personas)
	return out
}

// Names returns persona names in configured order
func (s *Set) Names() []string {
	names := make([]string, len(s.personas))
	for i, p := range s.personas {
		names[i] = p.Name
	}
	return names
}

func (s *Set) Len() int {
	return len(s.personas)
}

type fileFormat struct {
	Personas []Persona `yaml:"personas"`
}

// LoadFile reads a YAML persona file of the form
//
//	personas:
//	  - name: CTO
//	    prompt: You are a Chief Technology Officer...
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read personas file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML persona data
func Parse(data []byte) (*Set, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode personas: %w", err)
	}
	return New(f.Personas)
}

// Load returns the built-in set when path is empty, otherwise the file's set
func Load(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
