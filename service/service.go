// Package service wraps a suffix index with the configured engine, size
// limit, metrics and logging shared by the command line and HTTP server.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/xiles84/orftrie/config"
	"github.com/xiles84/orftrie/metrics"
	"github.com/xiles84/orftrie/suffix"
)

// ErrTooLong is returned when the sequence exceeds the configured max_length.
var ErrTooLong = errors.New("sequence exceeds max_length")

// Info summarises the loaded index.
type Info struct {
	Engine string        `json:"engine"`
	Length int           `json:"length"`
	Trie   *suffix.Stats `json:"trie,omitempty"`
}

// Repeat is the longest substring occurring at least twice.
type Repeat struct {
	Text      string `json:"text"`
	Positions []int  `json:"positions"`
}

// Service answers queries against one immutable index.
type Service struct {
	seq     string
	engine  string
	index   suffix.Index
	workers int
	log     zerolog.Logger
	metrics *metrics.Metrics

	arrayOnce sync.Once
	array     *suffix.Array
	arrayErr  error
}

// New builds the engine named in cfg over seq.
func New(seq string, cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) (*Service, error) {
	if len(seq) > cfg.MaxLength {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLong, len(seq), cfg.MaxLength)
	}
	if m == nil {
		m = metrics.New()
	}
	s := &Service{
		seq:     seq,
		engine:  cfg.Engine,
		workers: cfg.Workers,
		log:     log.With().Str("engine", cfg.Engine).Logger(),
		metrics: m,
	}

	start := time.Now()
	nodes := 0
	switch cfg.Engine {
	case config.EngineArray:
		arr, err := suffix.NewArray(seq)
		if err != nil {
			return nil, fmt.Errorf("build suffix array: %w", err)
		}
		s.index = arr
	default:
		trie, err := suffix.NewTrie(seq)
		if err != nil {
			return nil, fmt.Errorf("build suffix trie: %w", err)
		}
		s.index = trie
		nodes = trie.Stats().Nodes
	}
	elapsed := time.Since(start)
	m.ObserveBuild(cfg.Engine, elapsed, len(seq), nodes)

	s.log.Info().
		Int("length", len(seq)).
		Int("nodes", nodes).
		Dur("took", elapsed).
		Msg("index built")
	return s, nil
}

// Metrics returns the collectors the service records into.
func (s *Service) Metrics() *metrics.Metrics { return s.metrics }

// Search returns the ascending offsets of query.
func (s *Service) Search(query string) ([]int, error) {
	start := time.Now()
	positions, err := s.index.Search(query)
	s.metrics.ObserveQuery("search", time.Since(start), len(positions) > 0, err)
	if err != nil {
		s.log.Debug().Err(err).Str("query", query).Msg("search rejected")
		return nil, err
	}
	s.log.Debug().Str("query", query).Int("hits", len(positions)).Msg("search")
	return positions, nil
}

// SearchAll runs Search for every query on up to Workers goroutines.
// Results are in query order; the first error cancels the rest.
func (s *Service) SearchAll(ctx context.Context, queries []string) ([][]int, error) {
	results := make([][]int, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, q := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			positions, err := s.Search(q)
			if err != nil {
				return fmt.Errorf("query %q: %w", q, err)
			}
			results[i] = positions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Find returns the matches bounded by prefix and suffix.
func (s *Service) Find(prefix, sfx string) ([]suffix.Match, error) {
	start := time.Now()
	matches, err := s.index.FindMatches(prefix, sfx)
	s.metrics.ObserveQuery("find", time.Since(start), len(matches) > 0, err)
	if err != nil {
		s.log.Debug().Err(err).Str("prefix", prefix).Str("suffix", sfx).Msg("find rejected")
		return nil, err
	}
	s.log.Debug().Str("prefix", prefix).Str("suffix", sfx).Int("matches", len(matches)).Msg("find")
	return matches, nil
}

// LongestRepeat reports the longest repeated substring. The trie engine
// builds a suffix array on first use.
func (s *Service) LongestRepeat() (Repeat, error) {
	s.arrayOnce.Do(func() {
		if arr, ok := s.index.(*suffix.Array); ok {
			s.array = arr
			return
		}
		start := time.Now()
		s.array, s.arrayErr = suffix.NewArray(s.seq)
		s.log.Debug().Dur("took", time.Since(start)).Msg("suffix array built for repeats")
	})
	if s.arrayErr != nil {
		return Repeat{}, s.arrayErr
	}
	start := time.Now()
	text, positions := s.array.LongestRepeat()
	s.metrics.ObserveQuery("repeat", time.Since(start), text != "", nil)
	return Repeat{Text: text, Positions: positions}, nil
}

// Info describes the loaded index.
func (s *Service) Info() Info {
	info := Info{Engine: s.engine, Length: len(s.seq)}
	if trie, ok := s.index.(*suffix.Trie); ok {
		st := trie.Stats()
		info.Trie = &st
	}
	return info
}
