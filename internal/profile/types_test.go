package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(r *Registry) []Profile {
	var out []Profile
	for p := range r.All() {
		out = append(out, p)
	}
	return out
}

func TestProfileValueSemantics(t *testing.T) {
	original := New("survival", "1.20.1", "/srv/a", "-Xmx2G")
	copied := original
	copied.Args = "-Xmx4G"

	assert.Equal(t, "-Xmx2G", original.Args)
	assert.NotEqual(t, original, copied)
	assert.Equal(t, original, New("survival", "1.20.1", "/srv/a", "-Xmx2G"))
	assert.True(t, Profile{}.IsZero())
	assert.False(t, original.IsZero())
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, New("überleben", "1.20.1", "/srv/ü", "-Xmx2G").Validate())

	tests := []struct {
		field   string
		profile Profile
	}{
		{"name", New("srv\xff", "", "", "")},
		{"version", New("srv", "1.\xc0", "", "")},
		{"path", New("srv", "", "/srv/\xfe", "")},
		{"args", New("srv", "", "", "-X\x80")},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			err := tt.profile.Validate()
			require.ErrorIs(t, err, ErrInvalidUTF8)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseMissingPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    MissingPolicy
		wantErr bool
	}{
		{"", MissingReport, false},
		{"report", MissingReport, false},
		{"first-entry", MissingFirstEntry, false},
		{"LEGACY", MissingFirstEntry, false},
		{"ignore", MissingReport, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMissingPolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) MissingPolicy {
	t.Helper()
	p, err := ParseMissingPolicy(s)
	require.NoError(t, err)
	return p
}

func TestRegistry_AddGet(t *testing.T) {
	r := NewRegistry()
	r.Add(New("lobby", "1.19", "/srv/lobby", ""))
	p := New("survival", "1.20.1", "/srv/a", "-Xmx2G")
	r.Add(p)

	got := r.Get("survival")
	assert.Equal(t, p, got)

	got.Version = "changed"
	assert.Equal(t, "1.20.1", r.Get("survival").Version, "Get must return a copy")

	found, ok := r.Lookup("survival")
	assert.True(t, ok)
	assert.Equal(t, p, found)
}

func TestRegistry_GetMissingReturnsSentinel(t *testing.T) {
	r := NewRegistry()
	r.Add(New("lobby", "1.19", "/srv/lobby", ""))

	got := r.Get("missing")
	assert.True(t, got.IsZero())
	assert.Equal(t, "", got.Name)

	_, ok := r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_LookupDistinguishesEmptyProfile(t *testing.T) {
	r := NewRegistry()
	r.Add(Profile{})

	p, ok := r.Lookup("")
	assert.True(t, ok)
	assert.True(t, p.IsZero())
}

func TestRegistry_AddKeepsDuplicates(t *testing.T) {
	r := NewRegistry()
	r.Add(New("dup", "1", "/a", ""))
	r.Add(New("dup", "2", "/b", ""))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "1", r.Get("dup").Version, "first match wins")
}

func TestRegistry_RemoveFirstMatchOnly(t *testing.T) {
	r := NewRegistry()
	r.Add(New("a", "1", "", ""))
	r.Add(New("dup", "first", "", ""))
	r.Add(New("b", "1", "", ""))
	r.Add(New("dup", "second", "", ""))

	require.NoError(t, r.Remove("dup"))

	assert.Equal(t, []Profile{
		New("a", "1", "", ""),
		New("b", "1", "", ""),
		New("dup", "second", "", ""),
	}, collect(r))
}

func TestRegistry_RemoveMissing(t *testing.T) {
	seed := func(opts ...Option) *Registry {
		r := NewRegistry(opts...)
		r.Add(New("first", "1", "", ""))
		r.Add(New("second", "1", "", ""))
		return r
	}

	t.Run("report policy is a no-op", func(t *testing.T) {
		r := seed()
		err := r.Remove("absent")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "absent", nf.Name)
		assert.Equal(t, []string{"first", "second"}, r.Names(), "first entry must not be removed")
	})

	t.Run("first-entry policy removes index zero", func(t *testing.T) {
		r := seed(WithMissingPolicy(MissingFirstEntry))
		require.NoError(t, r.Remove("absent"))
		assert.Equal(t, []string{"second"}, r.Names(), "registry must not be left unchanged")
	})

	t.Run("first-entry policy on empty registry", func(t *testing.T) {
		r := NewRegistry(WithMissingPolicy(MissingFirstEntry))
		assert.ErrorIs(t, r.Remove("absent"), ErrNotFound)
		assert.Equal(t, 0, r.Len())
	})
}

func TestRegistry_EditInPlace(t *testing.T) {
	r := NewRegistry()
	r.Add(New("a", "1", "/a", ""))
	r.Add(New("b", "1", "/b", ""))
	r.Add(New("c", "1", "/c", ""))

	require.NoError(t, r.Edit(New("b", "2", "/b2", "nogui")))

	assert.Equal(t, []Profile{
		New("a", "1", "/a", ""),
		New("b", "2", "/b2", "nogui"),
		New("c", "1", "/c", ""),
	}, collect(r))
}

func TestRegistry_EditMissing(t *testing.T) {
	t.Run("report policy", func(t *testing.T) {
		r := NewRegistry()
		r.Add(New("a", "1", "", ""))

		err := r.Edit(New("z", "9", "", ""))
		assert.True(t, IsNotFound(err))
		assert.Equal(t, []Profile{New("a", "1", "", "")}, collect(r))
	})

	t.Run("first-entry policy replaces index zero", func(t *testing.T) {
		r := NewRegistry(WithMissingPolicy(MissingFirstEntry))
		r.Add(New("a", "1", "", ""))
		r.Add(New("b", "1", "", ""))

		require.NoError(t, r.Edit(New("z", "9", "", "")))
		assert.Equal(t, []Profile{New("z", "9", "", ""), New("b", "1", "", "")}, collect(r))
	})
}

func TestRegistry_IterationOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"a", "b", "c", "d"} {
		r.Add(New(name, "", "", ""))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, r.Names())

	r.Add(New("e", "", "", ""))
	require.NoError(t, r.Remove("d"))
	require.NoError(t, r.Edit(New("c", "edited", "", "")))

	var names []string
	for p := range r.All() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "e"}, names)

	// restartable
	assert.Equal(t, collect(r), collect(r))
}

func TestRegistry_IterationStopsEarly(t *testing.T) {
	r := NewRegistry()
	r.Add(New("a", "", "", ""))
	r.Add(New("b", "", "", ""))

	seen := 0
	for range r.All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestRegistry_MutableView(t *testing.T) {
	r := NewRegistry()
	r.Add(New("a", "1", "", ""))
	r.Add(New("b", "1", "", ""))

	for p := range r.Mutable() {
		p.Version = "2"
	}
	assert.Equal(t, "2", r.Get("a").Version)
	assert.Equal(t, "2", r.Get("b").Version)

	found := r.Find("b")
	require.NotNil(t, found)
	found.Args = "nogui"
	assert.Equal(t, "nogui", r.Get("b").Args)

	assert.Nil(t, r.Find("missing"))
}

func TestRegistry_ProfilesReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Add(New("a", "1", "", ""))

	ps := r.Profiles()
	ps[0].Name = "mutated"
	assert.Equal(t, []string{"a"}, r.Names())
}
