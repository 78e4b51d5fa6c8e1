package formatting

import (
	"encoding/json"

	"hsmanager/internal/profile"
)

// JSONFormatter renders profiles with the same field names as the profiles file.
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) *JSONFormatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatProfiles renders profiles as a JSON array.
func (f *JSONFormatter) FormatProfiles(profiles []profile.Profile) (string, error) {
	if profiles == nil {
		profiles = []profile.Profile{}
	}
	return marshalJSON(profiles)
}

// FormatProfile renders p as a JSON object.
func (f *JSONFormatter) FormatProfile(p profile.Profile) (string, error) {
	return marshalJSON(p)
}

func marshalJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
