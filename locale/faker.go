package locale

import (
	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/text/language"
)

// zeroSeed replaces a derived seed of 0, which gofakeit treats as a request
// for a random seed.
const zeroSeed = 0x5eed

// defaultProfile is the generic English profile used for unknown regions.
type defaultProfile struct{}

func (defaultProfile) Region() string    { return "" }
func (defaultProfile) Name() string      { return "Generic (English)" }
func (defaultProfile) Tag() language.Tag { return language.English }

func (defaultProfile) New(s int32) Generator {
	v := int64(s)
	if v == 0 {
		v = zeroSeed
	}
	return &fakerGenerator{f: gofakeit.New(v)}
}

type fakerGenerator struct {
	f *gofakeit.Faker
}

func (g *fakerGenerator) Identifier() string    { return g.f.UUID() }
func (g *fakerGenerator) GivenName() string     { return g.f.FirstName() }
func (g *fakerGenerator) MiddleName() string    { return g.f.MiddleName() }
func (g *fakerGenerator) FamilyName() string    { return g.f.LastName() }
func (g *fakerGenerator) City() string          { return g.f.City() }
func (g *fakerGenerator) StreetAddress() string { return g.f.Street() }
func (g *fakerGenerator) PostalCode() string    { return g.f.Zip() }
func (g *fakerGenerator) Phone() string         { return g.f.PhoneFormatted() }
