package personaldata

// Record is one synthetic person. Index is the 1-based position of the
// record across all pages of a seed.
type Record struct {
	Index      int    `json:"index"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

// Columns is the tabular header, in field order.
var Columns = []string{"index", "identifier", "name", "address", "phone"}
