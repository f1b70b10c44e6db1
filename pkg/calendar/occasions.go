package calendar

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed occasions.yaml
var builtinOccasionsYAML []byte

// Occasion is an annual month/day pair with a label
type Occasion struct {
	Label string     `yaml:"label"`
	Month time.Month `yaml:"month"`
	Day   int        `yaml:"day"`
}

// BuiltinOccasions returns the table of occasions shipped with the app
func BuiltinOccasions() []Occasion {
	occasions, err := ParseOccasions(builtinOccasionsYAML)
	if err != nil {
		// The table is embedded at build time.
		panic(err)
	}
	return occasions
}

// ParseOccasions decodes a YAML list of occasions and validates every entry
func ParseOccasions(data []byte) ([]Occasion, error) {
	var occasions []Occasion
	if err := yaml.Unmarshal(data, &occasions); err != nil {
		return nil, fmt.Errorf("failed to decode occasions: %w", err)
	}

	for i, occ := range occasions {
		if strings.TrimSpace(occ.Label) == "" {
			return nil, fmt.Errorf("occasion %d: %w", i, errors.New("empty label"))
		}
		if !ValidMonthDay(occ.Month, occ.Day) {
			return nil, fmt.Errorf("occasion %q: %w: %d-%d", occ.Label, ErrInvalidMonthDay, int(occ.Month), occ.Day)
		}
	}

	return occasions, nil
}
