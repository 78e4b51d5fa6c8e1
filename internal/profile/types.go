package profile

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"hsmanager/pkg/logging"
)

// Profile describes one server installation.
type Profile struct {
	// Name identifies the profile. Uniqueness is not enforced.
	Name string `json:"name" yaml:"name"`
	// Version is the server version, free-form.
	Version string `json:"version" yaml:"version"`
	// Path is the install directory of the server.
	Path string `json:"path" yaml:"path"`
	// Args holds the launch arguments as a single string.
	Args string `json:"args" yaml:"args"`
}

// New builds a Profile from its four fields.
func New(name, version, path, args string) Profile {
	return Profile{
		Name:    name,
		Version: version,
		Path:    path,
		Args:    args,
	}
}

// IsZero reports whether every field is empty. Get returns such a profile
// when nothing matches.
func (p Profile) IsZero() bool {
	return p == Profile{}
}

// Validate reports the first field that is not valid UTF-8. Such values
// cannot be stored without loss.
func (p Profile) Validate() error {
	fields := []struct{ name, value string }{
		{"name", p.Name},
		{"version", p.Version},
		{"path", p.Path},
		{"args", p.Args},
	}
	for _, f := range fields {
		if !utf8.ValidString(f.value) {
			return fmt.Errorf("%w: %s %q", ErrInvalidUTF8, f.name, f.value)
		}
	}
	return nil
}

// MissingPolicy selects what Remove and Edit do when no profile matches.
type MissingPolicy int

const (
	// MissingReport leaves the registry unchanged and returns a *NotFoundError.
	MissingReport MissingPolicy = iota
	// MissingFirstEntry acts on the first entry instead.
	MissingFirstEntry
)

func (p MissingPolicy) String() string {
	switch p {
	case MissingReport:
		return "report"
	case MissingFirstEntry:
		return "first-entry"
	default:
		return "unknown"
	}
}

// ParseMissingPolicy converts a configuration value into a MissingPolicy.
func ParseMissingPolicy(value string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "report":
		return MissingReport, nil
	case "first-entry", "legacy":
		return MissingFirstEntry, nil
	default:
		return MissingReport, fmt.Errorf("unknown missing policy %q (expected report or first-entry)", value)
	}
}

// Option configures a Registry.
type Option func(*Registry)

// WithMissingPolicy sets the not-found behavior of Remove and Edit.
func WithMissingPolicy(policy MissingPolicy) Option {
	return func(r *Registry) {
		r.policy = policy
	}
}

// Registry is an ordered collection of profiles.
type Registry struct {
	profiles []Profile
	policy   MissingPolicy
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		profiles: []Profile{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the registry's MissingPolicy.
func (r *Registry) Policy() MissingPolicy {
	return r.policy
}

// Len returns the number of profiles.
func (r *Registry) Len() int {
	return len(r.profiles)
}

// Add appends p. Duplicate names are accepted.
func (r *Registry) Add(p Profile) {
	r.profiles = append(r.profiles, p)
}

// indexOf returns the position of the first profile named name.
func (r *Registry) indexOf(name string) (int, bool) {
	for i := range r.profiles {
		if r.profiles[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// target resolves the entry Remove and Edit act on, applying the policy when
// name is absent.
func (r *Registry) target(op, name string) (int, error) {
	if i, ok := r.indexOf(name); ok {
		return i, nil
	}

	if r.policy == MissingFirstEntry && len(r.profiles) > 0 {
		logging.Warn("Registry", "%s: profile %q not found, falling back to first entry %q", op, name, r.profiles[0].Name)
		return 0, nil
	}

	return -1, &NotFoundError{Name: name}
}

// Remove deletes the first profile named name.
func (r *Registry) Remove(name string) error {
	i, err := r.target("remove", name)
	if err != nil {
		return err
	}

	r.profiles = append(r.profiles[:i], r.profiles[i+1:]...)
	return nil
}

// Edit replaces the first profile whose name equals p.Name, keeping its
// position.
func (r *Registry) Edit(p Profile) error {
	i, err := r.target("edit", p.Name)
	if err != nil {
		return err
	}

	r.profiles[i] = p
	return nil
}

// Lookup returns a copy of the first profile named name.
func (r *Registry) Lookup(name string) (Profile, bool) {
	i, ok := r.indexOf(name)
	if !ok {
		return Profile{}, false
	}
	return r.profiles[i], true
}

// Get returns a copy of the first profile named name, or the zero Profile
// when none matches. Prefer Lookup; Get exists for callers that rely on the
// empty-sentinel contract.
func (r *Registry) Get(name string) Profile {
	p, _ := r.Lookup(name)
	return p
}

// Find returns a pointer to the first profile named name, or nil. Writes
// through the pointer change the registry. The pointer is only valid until
// the next Add or Remove.
func (r *Registry) Find(name string) *Profile {
	i, ok := r.indexOf(name)
	if !ok {
		return nil
	}
	return &r.profiles[i]
}

// All yields the profiles in insertion order. Each iteration starts over.
func (r *Registry) All() iter.Seq[Profile] {
	return func(yield func(Profile) bool) {
		for _, p := range r.profiles {
			if !yield(p) {
				return
			}
		}
	}
}

// Mutable yields pointers to the stored profiles in insertion order. Changes
// made through them are visible immediately. The pointers must not be kept
// after the loop ends.
func (r *Registry) Mutable() iter.Seq[*Profile] {
	return func(yield func(*Profile) bool) {
		for i := range r.profiles {
			if !yield(&r.profiles[i]) {
				return
			}
		}
	}
}

// Profiles returns a copy of the stored profiles.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// Names returns the profile names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.profiles))
	for i, p := range r.profiles {
		names[i] = p.Name
	}
	return names
}
