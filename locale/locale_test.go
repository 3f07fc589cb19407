package locale

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable()
	require.NoError(t, err)
	return table
}

func TestNewTableLoadsEveryRegion(t *testing.T) {
	table := newTestTable(t)

	var codes []string
	for _, info := range table.Regions() {
		codes = append(codes, info.Code)
		require.NotEmpty(t, info.Name)
		require.NotEmpty(t, info.Tag)
	}
	require.Equal(t, []string{"ae", "bd", "ge", "lt", "mx", "pl", "pt", "uk", "us", "uz"}, codes)
}

func TestResolve(t *testing.T) {
	table := newTestTable(t)

	for _, tc := range []struct {
		region string
		tag    string
	}{
		{"us", "en-US"},
		{"uk", "en-GB"},
		{"pl", "pl-PL"},
		{"lt", "lv-LV"},
		{"ae", "ar-AE"},
		{"mx", "es-MX"},
		{"pt", "pt-PT"},
		{"ge", "ka-GE"},
		{"uz", "uz-Latn-UZ"},
		{"bd", "ne-NP"},
		{" PL ", "pl-PL"},
		{"zz", "en"},
		{"", "en"},
	} {
		require.Equal(t, tc.tag, table.Resolve(tc.region).Tag().String(), "region %q", tc.region)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	table := newTestTable(t)
	require.Equal(t, table.Default(), table.Resolve("zz"))
	require.Equal(t, table.Default(), table.Resolve(""))
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	table := newTestTable(t)
	profiles := []Profile{table.Default()}
	for _, info := range table.Regions() {
		profiles = append(profiles, table.Resolve(info.Code))
	}

	for _, p := range profiles {
		a, b := drawAll(p.New(1234)), drawAll(p.New(1234))
		require.Equal(t, a, b, "profile %q", p.Name())
		require.NotEqual(t, a, drawAll(p.New(4321)), "profile %q", p.Name())
	}
}

func TestGeneratorsFillEveryField(t *testing.T) {
	table := newTestTable(t)
	profiles := []Profile{table.Default()}
	for _, info := range table.Regions() {
		profiles = append(profiles, table.Resolve(info.Code))
	}

	for _, p := range profiles {
		for s := int32(-3); s < 3; s++ {
			values := drawAll(p.New(s))
			for i, v := range values {
				require.NotEmpty(t, strings.TrimSpace(v), "profile %q seed %d value %d", p.Name(), s, i)
			}
			require.Regexp(t, uuidV4, values[0], "profile %q", p.Name())
		}
	}
}

func TestTablePatternsFollowTheStream(t *testing.T) {
	table := newTestTable(t)

	for _, info := range table.Regions() {
		p := table.Resolve(info.Code)
		a, b := p.New(77), p.New(77)

		// Drain a fully before touching b so nothing but the seed is shared.
		var first []string
		for i := 0; i < 25; i++ {
			first = append(first, a.StreetAddress(), a.PostalCode(), a.Phone())
		}
		var second []string
		for i := 0; i < 25; i++ {
			second = append(second, b.StreetAddress(), b.PostalCode(), b.Phone())
		}
		require.Equal(t, first, second, "region %q", info.Code)

		c := p.New(78)
		require.NotEqual(t, first[:3], []string{c.StreetAddress(), c.PostalCode(), c.Phone()}, "region %q", info.Code)
	}
}

func TestTablePatterns(t *testing.T) {
	table := newTestTable(t)

	g := table.Resolve("us").New(99)
	for i := 0; i < 50; i++ {
		require.Regexp(t, `^[0-9]{5}$`, g.PostalCode())
		require.Regexp(t, `^\([2-9][0-9]{2}\) [2-9][0-9]{2}-[0-9]{4}$`, g.Phone())
		require.Regexp(t, `^[1-9][0-9]{1,3} \D+$`, g.StreetAddress())
	}

	g = table.Resolve("pl").New(99)
	for i := 0; i < 50; i++ {
		require.Regexp(t, `^[0-9]{2}-[0-9]{3}$`, g.PostalCode())
		require.Regexp(t, `^ul\. .+ [1-9][0-9]{0,2}$`, g.StreetAddress())
	}
}

func TestParseProfileRejectsBadData(t *testing.T) {
	valid := `
region = "xx"
name = "Test"
tag = "en-US"
given_names = ["A"]
middle_names = ["B"]
family_names = ["C"]
cities = ["D"]
streets = ["E"]
street_format = "{number} {street}"
building_pattern = '[1-9]'
postal_pattern = '[0-9]{5}'
phone_pattern = '[0-9]{7}'
`
	_, err := parseProfile([]byte(valid))
	require.NoError(t, err)

	for name, doc := range map[string]string{
		"syntax":      "region = ",
		"empty list":  strings.Replace(valid, `cities = ["D"]`, `cities = []`, 1),
		"format":      strings.Replace(valid, `"{number} {street}"`, `"{number}"`, 1),
		"bad pattern": strings.Replace(valid, `'[0-9]{5}'`, `'[0-9'`, 1),
		"bad tag":     strings.Replace(valid, `"en-US"`, `"not a tag"`, 1),
	} {
		_, err := parseProfile([]byte(doc))
		require.Error(t, err, name)
	}
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	p, err := loadProfile("data/us.toml")
	require.NoError(t, err)

	_, err = newTable(defaultProfile{}, p, p)
	require.Error(t, err)
}

func drawAll(g Generator) []string {
	return []string{
		g.Identifier(),
		g.GivenName(),
		g.MiddleName(),
		g.FamilyName(),
		g.City(),
		g.StreetAddress(),
		g.PostalCode(),
		g.Phone(),
	}
}
