package personaldata

import (
	"strings"

	"github.com/JusmeJr93/random-user-gen-backend/locale"
)

// Synthesize draws one record from g and stamps it with globalIndex.
//
// The draw order is identifier, given name, middle name, family name, city,
// street address, postal code, phone. g is stateful, so changing the order
// changes every record generated for a seed.
func Synthesize(g locale.Generator, globalIndex int) Record {
	r := Record{Index: globalIndex}
	r.Identifier = g.Identifier()

	given := g.GivenName()
	middle := g.MiddleName()
	family := g.FamilyName()
	r.Name = strings.Join([]string{given, middle, family}, " ")

	city := g.City()
	street := g.StreetAddress()
	postal := g.PostalCode()
	r.Address = strings.Join([]string{city, street, postal}, ", ")

	r.Phone = g.Phone()
	return r
}
