package formatting

import (
	"strings"

	"hsmanager/internal/profile"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) *YAMLFormatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatProfiles renders profiles as a YAML sequence.
func (f *YAMLFormatter) FormatProfiles(profiles []profile.Profile) (string, error) {
	if profiles == nil {
		profiles = []profile.Profile{}
	}
	return f.marshal(profiles)
}

// FormatProfile renders p as a YAML mapping.
func (f *YAMLFormatter) FormatProfile(p profile.Profile) (string, error) {
	return f.marshal(p)
}

func (f *YAMLFormatter) marshal(v interface{}) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\n"), nil
}
