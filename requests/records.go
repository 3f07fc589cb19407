package requests

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
)

// recordBody mirrors personaldata.Record with pointers so absent fields can
// be told apart from empty ones.
type recordBody struct {
	Index      *int    `json:"index"`
	Identifier *string `json:"identifier"`
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
}

type applyBody struct {
	Records *[]recordBody `json:"records"`
	Errors  *float64      `json:"errors"`
}

// DecodeApplyErrors reads {"records": [...], "errors": n}. Every record must
// carry name, address and phone strings; index and identifier are optional.
// A missing errors value means 0.
func DecodeApplyErrors(body io.Reader, l Limits) ([]personaldata.Record, float64, error) {
	var in applyBody
	if err := json.NewDecoder(body).Decode(&in); err != nil {
		return nil, 0, fmt.Errorf("%w: decoding body: %v", ErrInvalidParam, err)
	}
	if in.Records == nil {
		return nil, 0, fmt.Errorf("%w: records must be an array", ErrInvalidParam)
	}

	var count float64
	if in.Errors != nil {
		count = *in.Errors
	}
	if count < 0 || math.IsNaN(count) {
		return nil, 0, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidParam, FieldErrors, count)
	}
	if err := l.checkErrors(count); err != nil {
		return nil, 0, err
	}

	records := make([]personaldata.Record, 0, len(*in.Records))
	for i, rb := range *in.Records {
		rec, err := rb.record()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: records[%d]: %v", ErrInvalidParam, i, err)
		}
		records = append(records, rec)
	}
	return records, count, nil
}

func (rb recordBody) record() (personaldata.Record, error) {
	var rec personaldata.Record
	for _, f := range []struct {
		name string
		v    *string
	}{{"name", rb.Name}, {"address", rb.Address}, {"phone", rb.Phone}} {
		if f.v == nil {
			return rec, fmt.Errorf("missing %s", f.name)
		}
	}
	rec.Name, rec.Address, rec.Phone = *rb.Name, *rb.Address, *rb.Phone
	if rb.Index != nil {
		rec.Index = *rb.Index
	}
	if rb.Identifier != nil {
		rec.Identifier = *rb.Identifier
	}
	return rec, nil
}
