// Package generator assembles pages of synthetic records.
package generator

import (
	"github.com/JusmeJr93/random-user-gen-backend/locale"
	"github.com/JusmeJr93/random-user-gen-backend/noise"
	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
)

// NoiseSource returns the randomness used to corrupt the record with the
// given global index.
type NoiseSource func(index int) noise.Rand

// GenerateBatch synthesizes batchSize records of page from g, in index order,
// passing each through the injector described by spec. g must be freshly
// seeded for the page: records share its stream.
func GenerateBatch(g locale.Generator, batchSize int, spec noise.Spec, page int, noiseFor NoiseSource) []personaldata.Record {
	if batchSize <= 0 {
		return []personaldata.Record{}
	}
	start := (page - 1) * batchSize

	records := make([]personaldata.Record, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		index := start + i + 1
		rec := personaldata.Synthesize(g, index)
		if !spec.None() {
			rec = noise.Apply(noiseFor(index), rec, spec)
		}
		records = append(records, rec)
	}
	return records
}
