package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/lucasjones/reggen"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/JusmeJr93/random-user-gen-backend/seed"
)

//go:embed data/*.toml
var dataFS embed.FS

// patternLimit caps unbounded repetitions in data patterns.
const patternLimit = 4

// tableData is the on-disk shape of data/<region>.toml.
type tableData struct {
	Region          string   `toml:"region"`
	Name            string   `toml:"name"`
	Tag             string   `toml:"tag"`
	GivenNames      []string `toml:"given_names"`
	MiddleNames     []string `toml:"middle_names"`
	FamilyNames     []string `toml:"family_names"`
	Cities          []string `toml:"cities"`
	Streets         []string `toml:"streets"`
	StreetFormat    string   `toml:"street_format"`
	BuildingPattern string   `toml:"building_pattern"`
	PostalPattern   string   `toml:"postal_pattern"`
	PhonePattern    string   `toml:"phone_pattern"`
}

func (d *tableData) validate() error {
	lists := map[string][]string{
		"given_names":  d.GivenNames,
		"middle_names": d.MiddleNames,
		"family_names": d.FamilyNames,
		"cities":       d.Cities,
		"streets":      d.Streets,
	}
	for name, list := range lists {
		if len(list) == 0 {
			return fmt.Errorf("%s is empty", name)
		}
	}
	if !strings.Contains(d.StreetFormat, "{street}") {
		return fmt.Errorf("street_format %q has no {street} placeholder", d.StreetFormat)
	}
	for name, p := range map[string]string{
		"building_pattern": d.BuildingPattern,
		"postal_pattern":   d.PostalPattern,
		"phone_pattern":    d.PhonePattern,
	} {
		if _, err := reggen.NewGenerator(p); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func loadProfiles() ([]Profile, error) {
	files, err := fs.Glob(dataFS, "data/*.toml")
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, 0, len(files))
	for _, file := range files {
		p, err := loadProfile(file)
		if err != nil {
			return nil, fmt.Errorf("locale: %s: %w", file, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func loadProfile(file string) (*tableProfile, error) {
	raw, err := dataFS.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parseProfile(raw)
}

func parseProfile(raw []byte) (*tableProfile, error) {
	var d tableData
	if err := toml.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	tag, err := language.Parse(d.Tag)
	if err != nil {
		return nil, fmt.Errorf("tag %q: %w", d.Tag, err)
	}
	return &tableProfile{data: d, tag: tag}, nil
}

// tableProfile serves a region from static word lists and patterns.
type tableProfile struct {
	data tableData
	tag  language.Tag
}

func (p *tableProfile) Region() string    { return p.data.Region }
func (p *tableProfile) Name() string      { return p.data.Name }
func (p *tableProfile) Tag() language.Tag { return p.tag }

func (p *tableProfile) New(s int32) Generator {
	return &tableGenerator{
		data:     &p.data,
		src:      seed.FromInt64(int64(s)),
		building: mustPattern(p.data.BuildingPattern),
		postal:   mustPattern(p.data.PostalPattern),
		phone:    mustPattern(p.data.PhonePattern),
	}
}

// mustPattern compiles a pattern already checked by validate.
func mustPattern(p string) *reggen.Generator {
	g, err := reggen.NewGenerator(p)
	if err != nil {
		panic(fmt.Sprintf("locale: pattern %q: %v", p, err))
	}
	return g
}

// tableGenerator is one request's view of a tableProfile. The reggen
// generators are reseeded from src before every expansion so their output
// depends on the stream only.
type tableGenerator struct {
	data     *tableData
	src      *seed.Stream
	building *reggen.Generator
	postal   *reggen.Generator
	phone    *reggen.Generator
}

func (g *tableGenerator) pick(list []string) string {
	return list[g.src.IntN(len(list))]
}

func (g *tableGenerator) expand(r *reggen.Generator) string {
	r.SetSeed(g.src.Int64())
	return r.Generate(patternLimit)
}

// Identifier returns a version 4 UUID built from stream bytes.
func (g *tableGenerator) Identifier() string {
	var id uuid.UUID
	g.src.Read(id[:])
	id.SetVersion(uuid.V4)
	id.SetVariant(uuid.VariantRFC4122)
	return id.String()
}

func (g *tableGenerator) GivenName() string  { return g.pick(g.data.GivenNames) }
func (g *tableGenerator) MiddleName() string { return g.pick(g.data.MiddleNames) }
func (g *tableGenerator) FamilyName() string { return g.pick(g.data.FamilyNames) }
func (g *tableGenerator) City() string       { return g.pick(g.data.Cities) }

func (g *tableGenerator) StreetAddress() string {
	street := g.pick(g.data.Streets)
	number := g.expand(g.building)
	return strings.NewReplacer("{street}", street, "{number}", number).Replace(g.data.StreetFormat)
}

func (g *tableGenerator) PostalCode() string { return g.expand(g.postal) }
func (g *tableGenerator) Phone() string      { return g.expand(g.phone) }
