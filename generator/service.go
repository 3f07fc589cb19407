package generator

import (
	"github.com/JusmeJr93/random-user-gen-backend/locale"
	"github.com/JusmeJr93/random-user-gen-backend/logger"
	"github.com/JusmeJr93/random-user-gen-backend/noise"
	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
	"github.com/JusmeJr93/random-user-gen-backend/seed"
)

const (
	DefaultPage      = 1
	DefaultBatchSize = 20
)

// Params is a validated generation request.
type Params struct {
	Region    string
	Seed      string
	Page      int
	BatchSize int
	Errors    noise.Spec
}

func (p Params) withDefaults() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.BatchSize < 1 {
		p.BatchSize = DefaultBatchSize
	}
	if p.Errors.Kind == "" {
		p.Errors.Kind = noise.KindCount
	}
	return p
}

type Options struct {
	// ReproducibleErrors seeds error injection from the record's seed
	// material. When false the injector uses ambient randomness.
	ReproducibleErrors bool
}

type Service struct {
	table *locale.Table
	log   *logger.Log
	opts  Options
}

func New(table *locale.Table, log *logger.Log, opts Options) *Service {
	return &Service{table: table, log: log, opts: opts}
}

// Profile returns the profile serving region.
func (s *Service) Profile(region string) locale.Profile {
	return s.table.Resolve(region)
}

// GeneratePage returns page p.Page of p.Seed in p.Region.
func (s *Service) GeneratePage(p Params) []personaldata.Record {
	p = p.withDefaults()
	profile := s.table.Resolve(p.Region)
	gen := profile.New(seed.Derive(p.Seed, p.Page))

	s.log.Debugf("GENERATOR:: page %d of seed %q, region %q (%s), %d records, errors %s=%v",
		p.Page, p.Seed, p.Region, profile.Tag(), p.BatchSize, p.Errors.Kind, p.Errors.Value)

	return GenerateBatch(gen, p.BatchSize, p.Errors, p.Page, s.noiseFor(p))
}

// GenerateRange returns pages 1 through p.Page, each generated exactly as
// GeneratePage would, so an export matches the pages a caller browsed.
func (s *Service) GenerateRange(p Params) []personaldata.Record {
	p = p.withDefaults()

	records := make([]personaldata.Record, 0, p.Page*p.BatchSize)
	for page := 1; page <= p.Page; page++ {
		q := p
		q.Page = page
		records = append(records, s.GeneratePage(q)...)
	}
	return records
}

// ApplyErrorsToBatch runs count mode injection over caller supplied records.
// records is not modified.
func (s *Service) ApplyErrorsToBatch(records []personaldata.Record, errorCount float64) []personaldata.Record {
	s.log.Debugf("GENERATOR:: applying %v errors to %d records", errorCount, len(records))

	r := seed.Ambient()
	out := make([]personaldata.Record, len(records))
	for i, rec := range records {
		out[i] = noise.ApplyCount(r, rec, errorCount)
	}
	return out
}

func (s *Service) noiseFor(p Params) NoiseSource {
	if s.opts.ReproducibleErrors {
		return func(index int) noise.Rand {
			return seed.New(seed.Key(p.Seed, p.Page, index, "noise"))
		}
	}
	r := seed.Ambient()
	return func(int) noise.Rand { return r }
}
