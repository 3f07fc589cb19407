// Package export serializes record sequences as delimited text.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
)

const ContentType = "text/csv"

// WriteCSV writes a header row followed by one row per record.
func WriteCSV(w io.Writer, records []personaldata.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(personaldata.Columns); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{strconv.Itoa(r.Index), r.Identifier, r.Name, r.Address, r.Phone}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
