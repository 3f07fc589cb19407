package requests

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JusmeJr93/random-user-gen-backend/generator"
	"github.com/JusmeJr93/random-user-gen-backend/noise"
	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
)

var limits = Limits{MaxBatchSize: 100, MaxErrors: 50}

func TestParamsDefaults(t *testing.T) {
	p, err := FromQuery("generateData", url.Values{"region": {"pl"}, "seed": {"abc"}}).Params(limits)
	require.NoError(t, err)
	require.Equal(t, generator.Params{
		Region:    "pl",
		Seed:      "abc",
		Page:      1,
		BatchSize: 20,
		Errors:    noise.Count(0),
	}, p)
}

func TestParamsParsesEverything(t *testing.T) {
	q, err := url.ParseQuery("region=us&seed=42&pageNumber=3&batchSize=10&errors=2.5&errorMode=count&pageNumber=9")
	require.NoError(t, err)

	p, err := FromQuery("generateData", q).Params(limits)
	require.NoError(t, err)
	require.Equal(t, generator.Params{
		Region:    "us",
		Seed:      "42",
		Page:      3,
		BatchSize: 10,
		Errors:    noise.Count(2.5),
	}, p)

	q.Set("errorMode", "rate")
	q.Set("errors", "0.25")
	p, err = FromQuery("generateData", q).Params(limits)
	require.NoError(t, err)
	require.Equal(t, noise.Rate(0.25), p.Errors)
}

func TestParamsRejectsInvalid(t *testing.T) {
	for _, raw := range []string{
		"pageNumber=abc",
		"pageNumber=0",
		"pageNumber=-2",
		"pageNumber=1000001",
		"batchSize=1.5",
		"batchSize=0",
		"batchSize=101",
		"errors=lots",
		"errors=-1",
		"errors=NaN",
		"errors=Inf",
		"errorMode=percent",
		"errorMode=rate&errors=1.5",
		"errors=51",
	} {
		q, err := url.ParseQuery(raw)
		require.NoError(t, err)

		_, err = FromQuery("generateData", q).Params(limits)
		require.ErrorIs(t, err, ErrInvalidParam, raw)
	}
}

func TestParamsWithoutBatchLimit(t *testing.T) {
	p, err := FromQuery("", url.Values{"batchSize": {"5000"}}).Params(Limits{})
	require.NoError(t, err)
	require.Equal(t, 5000, p.BatchSize)
}

func TestEncodeDecode(t *testing.T) {
	r := NewReq("generateData")
	r.Append(FieldSeed, "abc")
	r.Append(FieldPage, "2")

	b, err := r.Encode()
	require.NoError(t, err)

	got, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, r, got)
	require.Equal(t, "abc", got.Fields[FieldSeed])
}

func TestDecodeWithoutFields(t *testing.T) {
	r, err := Decode([]byte(`{"Name":"regions"}`))
	require.NoError(t, err)
	require.NotNil(t, r.Fields)

	_, err = Decode([]byte(`not json`))
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestDecodeApplyErrors(t *testing.T) {
	body := `{"errors": 3, "records": [
		{"index": 1, "identifier": "a", "name": "Ann Lee Roe", "address": "Town, 1 Road, 00000", "phone": "555"},
		{"name": "", "address": "x", "phone": "y"}
	]}`

	records, count, err := DecodeApplyErrors(strings.NewReader(body), limits)
	require.NoError(t, err)
	require.Equal(t, 3.0, count)
	require.Equal(t, []personaldata.Record{
		{Index: 1, Identifier: "a", Name: "Ann Lee Roe", Address: "Town, 1 Road, 00000", Phone: "555"},
		{Name: "", Address: "x", Phone: "y"},
	}, records)
}

func TestDecodeApplyErrorsDefaultsCount(t *testing.T) {
	records, count, err := DecodeApplyErrors(strings.NewReader(`{"records": []}`), limits)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Empty(t, records)
}

func TestDecodeApplyErrorsRejects(t *testing.T) {
	for _, body := range []string{
		``,
		`[]`,
		`{}`,
		`{"records": null}`,
		`{"records": {"name": "x"}}`,
		`{"records": [{"name": "x", "address": "y"}]}`,
		`{"records": [{"name": 1, "address": "y", "phone": "z"}]}`,
		`{"records": [null]}`,
		`{"records": [], "errors": -1}`,
		`{"records": [], "errors": "3"}`,
		`{"records": [], "errors": 51}`,
	} {
		_, _, err := DecodeApplyErrors(strings.NewReader(body), limits)
		require.ErrorIs(t, err, ErrInvalidParam, body)
	}
}
