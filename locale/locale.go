// Package locale maps region codes to synthetic data profiles.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Generator draws locale flavoured values from one seeded stream.
// Every call consumes the stream, so call order decides the output.
type Generator interface {
	Identifier() string
	GivenName() string
	MiddleName() string
	FamilyName() string
	City() string
	StreetAddress() string
	PostalCode() string
	Phone() string
}

// Profile is an immutable bundle able to build seeded generators.
type Profile interface {
	Region() string
	Name() string
	Tag() language.Tag
	New(seed int32) Generator
}

// Info describes a profile for listings.
type Info struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

func describe(p Profile) Info {
	return Info{Code: p.Region(), Name: p.Name(), Tag: p.Tag().String()}
}

// Table is the region code to profile mapping. It is built once at startup
// and only read afterwards.
type Table struct {
	profiles map[string]Profile
	fallback Profile
}

// NewTable loads every embedded region profile and the generic fallback.
func NewTable() (*Table, error) {
	profiles, err := loadProfiles()
	if err != nil {
		return nil, err
	}
	return newTable(defaultProfile{}, profiles...)
}

func newTable(fallback Profile, profiles ...Profile) (*Table, error) {
	t := &Table{
		profiles: make(map[string]Profile, len(profiles)),
		fallback: fallback,
	}
	for _, p := range profiles {
		code := normalize(p.Region())
		if code == "" {
			return nil, fmt.Errorf("locale: profile %q has no region code", p.Name())
		}
		if _, ok := t.profiles[code]; ok {
			return nil, fmt.Errorf("locale: duplicate region code %q", code)
		}
		t.profiles[code] = p
	}
	return t, nil
}

// Resolve returns the profile registered for region, or the default profile
// when the code is empty or unknown.
func (t *Table) Resolve(region string) Profile {
	if p, ok := t.profiles[normalize(region)]; ok {
		return p
	}
	return t.fallback
}

// Default returns the fallback profile.
func (t *Table) Default() Profile {
	return t.fallback
}

// Regions lists the registered profiles ordered by code.
func (t *Table) Regions() []Info {
	out := make([]Info, 0, len(t.profiles))
	for _, p := range t.profiles {
		out = append(out, describe(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func normalize(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}
