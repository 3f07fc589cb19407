// Package seed turns caller supplied seed material into reproducible
// pseudo-random streams.
//
// A Stream is keyed by a string. The same key always produces the same
// sequence of draws on every platform, which is what makes a generated page
// reproducible from (seed, page) alone.
//
// A Stream is not safe for concurrent use. Every request builds its own.
package seed

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"time"
)

// Source is the minimal capability the record generators need from a
// seeded stream.
type Source interface {
	Next32() int32
}

// Stream is a string-keyed PCG stream.
type Stream struct {
	rng *rand.Rand
}

var _ Source = (*Stream)(nil)

// New returns the stream for key.
func New(key string) *Stream {
	h := fnv.New64a()
	h.Write([]byte(key))
	return FromInt64(int64(h.Sum64()))
}

// FromInt64 returns a stream seeded with a numeric seed.
func FromInt64(v int64) *Stream {
	s := uint64(v)
	return &Stream{rng: rand.New(rand.NewPCG(mix(s, 0), mix(s, 1)))}
}

// Ambient returns a time seeded stream. Its output is not reproducible.
func Ambient() *Stream {
	return FromInt64(time.Now().UnixNano() ^ rand.Int64())
}

// Key joins parts with "-", the format used for every derivation key.
func Key(parts ...any) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return strings.Join(s, "-")
}

// Derive returns the 32-bit generator seed for one page of callerSeed.
// The key is "{callerSeed}-{page}", so every page can be regenerated
// without touching the pages before it.
func Derive(callerSeed string, page int) int32 {
	return New(Key(callerSeed, page)).Next32()
}

func (s *Stream) Next32() int32 {
	return int32(s.rng.Uint32())
}

func (s *Stream) Int64() int64 {
	return s.rng.Int64()
}

// IntN returns a uniform int in [0, n). It panics if n <= 0.
func (s *Stream) IntN(n int) int {
	return s.rng.IntN(n)
}

// Float64 returns a uniform float in [0.0, 1.0).
func (s *Stream) Float64() float64 {
	return s.rng.Float64()
}

// Read fills p with stream bytes. It never fails.
func (s *Stream) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := s.rng.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// mix is the SplitMix64 finalizer applied to seed and a stream selector.
func mix(seed, stream uint64) uint64 {
	x := seed ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
