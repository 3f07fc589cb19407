package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
)

func TestWriteCSV(t *testing.T) {
	records := []personaldata.Record{
		{Index: 1, Identifier: "a", Name: "Jan Józef Nowak", Address: "Kraków, ul. Polna 3, 30-001", Phone: "+48 500 100 200"},
		{Index: 2, Identifier: "b", Name: `Anne "Annie" Lee`, Address: "Town, 1 Road, 00000", Phone: "555"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"index", "identifier", "name", "address", "phone"},
		{"1", "a", "Jan Józef Nowak", "Kraków, ul. Polna 3, 30-001", "+48 500 100 200"},
		{"2", "b", `Anne "Annie" Lee`, "Town, 1 Road, 00000", "555"},
	}, rows)
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	require.Equal(t, "index,identifier,name,address,phone\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteCSVPropagatesWriteErrors(t *testing.T) {
	require.Error(t, WriteCSV(failingWriter{}, []personaldata.Record{{Index: 1}}))
}
