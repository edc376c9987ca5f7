package meta

import (
	"context"

	"github.com/alexiusacademia/buildmeta/internal/resolve"
)

type cached struct {
	value  string
	source resolve.Source
}

// Session resolves each value at most once, so one build sees stable
// values even when defaults read the clock or a moving git HEAD.
// Failures are not cached. A Session is not safe for concurrent use.
type Session struct {
	r     *Resolver
	cache map[string]cached
}

// NewSession starts a session backed by r.
func NewSession(r *Resolver) *Session {
	return &Session{r: r, cache: make(map[string]cached)}
}

// Explain resolves the named value once and then returns the stored result.
func (s *Session) Explain(ctx context.Context, name string) (string, resolve.Source, error) {
	if c, ok := s.cache[name]; ok {
		return c.value, c.source, nil
	}
	v, src, err := s.r.explain(ctx, name, s)
	if err != nil {
		return "", src, err
	}
	s.cache[name] = cached{value: v, source: src}
	return v, src, nil
}

// Get resolves the named value once.
func (s *Session) Get(ctx context.Context, name string) (string, error) {
	v, _, err := s.Explain(ctx, name)
	return v, err
}

// All resolves every value once.
func (s *Session) All(ctx context.Context) (Metadata, error) {
	return all(ctx, s)
}
