// Package noise corrupts record fields with single character typos.
//
// Two policies coexist. Count applies an exact number of mutations spread
// over the name, address and phone fields. Rate is the older behaviour: each
// field is mutated once with a fixed probability.
package noise

import "fmt"

// Rand is the randomness the injector consumes.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Mutation is a single character edit.
type Mutation int

const (
	Delete Mutation = iota
	Insert
	Transpose
)

// mutations is indexed by uniform draws; keep its order stable.
var mutations = [...]Mutation{Delete, Insert, Transpose}

func (m Mutation) String() string {
	switch m {
	case Delete:
		return "delete"
	case Insert:
		return "add"
	case Transpose:
		return "swap"
	}
	return fmt.Sprintf("Mutation(%d)", int(m))
}

// IntroduceError applies kind once to text at a position drawn from r.
// Empty text is returned untouched. Positions count runes, not bytes.
func IntroduceError(r Rand, text string, kind Mutation) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return text
	}

	switch kind {
	case Delete:
		pos := r.IntN(n)
		return string(runes[:pos]) + string(runes[pos+1:])
	case Insert:
		// n+1 slots: the letter may also be appended.
		pos := r.IntN(n + 1)
		c := rune('a' + r.IntN(26))
		return string(runes[:pos]) + string(c) + string(runes[pos:])
	case Transpose:
		pos := r.IntN(n)
		if pos == n-1 {
			return text
		}
		runes[pos], runes[pos+1] = runes[pos+1], runes[pos]
		return string(runes)
	}
	return text
}

func randomMutation(r Rand) Mutation {
	return mutations[r.IntN(len(mutations))]
}
