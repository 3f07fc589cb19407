// Package requests coerces loosely typed request fields into validated
// generation parameters.
package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/JusmeJr93/random-user-gen-backend/generator"
	"github.com/JusmeJr93/random-user-gen-backend/noise"
)

// ErrInvalidParam wraps every coercion and validation failure.
var ErrInvalidParam = errors.New("invalid parameter")

// Field names shared by query strings and websocket messages.
const (
	FieldRegion    = "region"
	FieldSeed      = "seed"
	FieldPage      = "pageNumber"
	FieldBatchSize = "batchSize"
	FieldErrors    = "errors"
	FieldErrorMode = "errorMode"
)

// DefaultMaxPage bounds pageNumber so global indices stay small.
const DefaultMaxPage = 1000000

// Limits bound request values. Zero fields mean no limit, except MaxPage
// which falls back to DefaultMaxPage.
type Limits struct {
	MaxBatchSize int
	MaxPage      int
	MaxErrors    float64
}

type Request struct {
	Name   string
	Fields map[string]string
}

func NewReq(name string) *Request {
	return &Request{name, make(map[string]string)}
}

// FromQuery keeps the first value of every query key.
func FromQuery(name string, q url.Values) *Request {
	r := NewReq(name)
	for k, v := range q {
		if len(v) > 0 {
			r.Append(k, v[0])
		}
	}
	return r
}

func (r *Request) Append(name string, data string) {
	r.Fields[name] = data
}

func (r *Request) Encode() ([]byte, error) {
	return json.Marshal(r)
}

func Decode(b []byte) (*Request, error) {
	req := &Request{}
	if err := json.Unmarshal(b, req); err != nil {
		return nil, fmt.Errorf("%w: decoding request: %v", ErrInvalidParam, err)
	}
	if req.Fields == nil {
		req.Fields = make(map[string]string)
	}
	return req, nil
}

// Params validates the request fields. Missing numeric fields take the
// generator defaults.
func (r *Request) Params(l Limits) (generator.Params, error) {
	if l.MaxPage <= 0 {
		l.MaxPage = DefaultMaxPage
	}

	p := generator.Params{
		Region: r.Fields[FieldRegion],
		Seed:   r.Fields[FieldSeed],
	}

	var err error
	if p.Page, err = r.getInt(FieldPage, generator.DefaultPage, 1, l.MaxPage); err != nil {
		return p, err
	}
	maxBatch := l.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = math.MaxInt32
	}
	if p.BatchSize, err = r.getInt(FieldBatchSize, generator.DefaultBatchSize, 1, maxBatch); err != nil {
		return p, err
	}

	kind, err := noise.ParseKind(r.Fields[FieldErrorMode])
	if err != nil {
		return p, fmt.Errorf("%w: %s: %v", ErrInvalidParam, FieldErrorMode, err)
	}
	value, err := r.getFloat(FieldErrors, 0)
	if err != nil {
		return p, err
	}
	if kind == noise.KindRate && value > 1 {
		return p, fmt.Errorf("%w: %s must be between 0 and 1 in rate mode, got %v", ErrInvalidParam, FieldErrors, value)
	}
	if err := l.checkErrors(value); err != nil {
		return p, err
	}
	p.Errors = noise.Spec{Kind: kind, Value: value}
	return p, nil
}

// checkErrors rejects error counts above l.MaxErrors.
func (l Limits) checkErrors(count float64) error {
	if l.MaxErrors > 0 && count > l.MaxErrors {
		return fmt.Errorf("%w: %s must be at most %v, got %v", ErrInvalidParam, FieldErrors, l.MaxErrors, count)
	}
	return nil
}

func (r *Request) getInt(key string, def, min, max int) (int, error) {
	v := strings.TrimSpace(r.Fields[key])
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidParam, key, v)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidParam, key, min, max, n)
	}
	return n, nil
}

// getFloat accepts finite, non-negative numbers.
func (r *Request) getFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(r.Fields[key])
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidParam, key, v)
	}
	if f < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidParam, key, f)
	}
	return f, nil
}
