package noise

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
)

var ErrUnknownKind = errors.New("unknown error mode")

// Kind names an injection policy.
type Kind string

const (
	KindCount Kind = "count"
	KindRate  Kind = "rate"
)

// ParseKind maps a request value to a Kind. Empty means count.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindCount:
		return KindCount, nil
	case KindRate:
		return KindRate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Spec selects a policy and its amount: a number of mutations for
// KindCount, a per field probability for KindRate.
type Spec struct {
	Kind  Kind
	Value float64
}

func Count(n float64) Spec { return Spec{Kind: KindCount, Value: n} }
func Rate(p float64) Spec  { return Spec{Kind: KindRate, Value: p} }

// None reports whether s can never mutate anything.
func (s Spec) None() bool {
	return !(s.Value > 0)
}

// Apply dispatches rec to the policy named by s. An unknown kind leaves rec
// unchanged.
func Apply(r Rand, rec personaldata.Record, s Spec) personaldata.Record {
	switch s.Kind {
	case KindCount:
		return ApplyCount(r, rec, s.Value)
	case KindRate:
		return ApplyRate(r, rec, s.Value)
	}
	return rec
}

// field selects one of the mutable record fields.
type field int

const (
	fieldName field = iota
	fieldAddress
	fieldPhone
)

var fields = [...]field{fieldName, fieldAddress, fieldPhone}

func (f field) of(rec *personaldata.Record) *string {
	switch f {
	case fieldAddress:
		return &rec.Address
	case fieldPhone:
		return &rec.Phone
	}
	return &rec.Name
}

// Ops is the number of mutations count mode performs: 0 for count <= 0,
// otherwise round(count) but at least 1. Non finite counts yield 0.
func Ops(count float64) int {
	if !(count > 0) || math.IsInf(count, 0) {
		return 0
	}
	n := math.Round(count)
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < 1 {
		return 1
	}
	return int(n)
}

// ApplyCount performs exactly Ops(count) mutations. Each one picks a field
// and a mutation kind uniformly; edits to the same field accumulate.
func ApplyCount(r Rand, rec personaldata.Record, count float64) personaldata.Record {
	for i := Ops(count); i > 0; i-- {
		f := fields[r.IntN(len(fields))]
		kind := randomMutation(r)
		p := f.of(&rec)
		*p = IntroduceError(r, *p, kind)
	}
	return rec
}

// ApplyRate mutates each field once with probability rate.
func ApplyRate(r Rand, rec personaldata.Record, rate float64) personaldata.Record {
	for _, f := range fields {
		if r.Float64() < rate {
			p := f.of(&rec)
			*p = IntroduceError(r, *p, randomMutation(r))
		}
	}
	return rec
}
