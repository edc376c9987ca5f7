// Package meta derives build metadata (ABI, builder identity, repository
// URL, version name, commit hash and timestamp) from environment
// variables, project properties and git.
package meta

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexiusacademia/buildmeta/internal/resolve"
	"github.com/alexiusacademia/buildmeta/internal/shell"
	"github.com/rs/zerolog/log"
)

var ErrUnknownKey = errors.New("unknown metadata key")

// Metadata holds every resolved value.
type Metadata struct {
	ABI         string `json:"abi"`
	Builder     string `json:"builder"`
	GitRepo     string `json:"gitRepo"`
	VersionName string `json:"versionName"`
	CommitHash  string `json:"commitHash"`
	Timestamp   string `json:"timestamp"`
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDefaultABI changes the ABI used when nothing overrides it.
func WithDefaultABI(abi string) Option {
	return func(r *Resolver) {
		r.defaultABI = abi
	}
}

// WithClock replaces time.Now for the timestamp default.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// Resolver computes metadata values on every call. It keeps no state
// between calls; use a Session to resolve each value once.
type Resolver struct {
	env        resolve.Env
	props      resolve.Properties
	runner     shell.Runner
	now        func() time.Time
	defaultABI string
}

// New returns a Resolver reading from env and props and running git
// through runner. props may be nil.
func New(env resolve.Env, props resolve.Properties, runner shell.Runner, opts ...Option) *Resolver {
	r := &Resolver{
		env:        env,
		props:      props,
		runner:     runner,
		now:        time.Now,
		defaultABI: DefaultABI,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// explainer is implemented by Resolver and Session; defaults that depend
// on other values look them up through it so a Session's cache is used.
type explainer interface {
	Explain(ctx context.Context, name string) (string, resolve.Source, error)
}

// Explain resolves the named value and reports which tier produced it.
func (r *Resolver) Explain(ctx context.Context, name string) (string, resolve.Source, error) {
	return r.explain(ctx, name, r)
}

// Get resolves the named value.
func (r *Resolver) Get(ctx context.Context, name string) (string, error) {
	v, _, err := r.Explain(ctx, name)
	return v, err
}

// All resolves every value.
func (r *Resolver) All(ctx context.Context) (Metadata, error) {
	return all(ctx, r)
}

func (r *Resolver) ABI(ctx context.Context) (string, error) { return r.Get(ctx, NameABI) }

func (r *Resolver) Builder(ctx context.Context) (string, error) { return r.Get(ctx, NameBuilder) }

func (r *Resolver) GitRepo(ctx context.Context) (string, error) { return r.Get(ctx, NameGitRepo) }

func (r *Resolver) VersionName(ctx context.Context) (string, error) {
	return r.Get(ctx, NameVersionName)
}

func (r *Resolver) CommitHash(ctx context.Context) (string, error) {
	return r.Get(ctx, NameCommitHash)
}

func (r *Resolver) Timestamp(ctx context.Context) (string, error) {
	return r.Get(ctx, NameTimestamp)
}

func (r *Resolver) explain(ctx context.Context, name string, deps explainer) (string, resolve.Source, error) {
	key, ok := KeyByName(name)
	if !ok {
		return "", resolve.SourceDefault, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}

	v, src, err := resolve.Resolve(r.env, r.props, key.Env, key.Property, func() (string, error) {
		return r.computeDefault(ctx, key, deps)
	})
	if err != nil {
		return "", src, fmt.Errorf("resolving %s: %w", name, err)
	}
	log.Debug().Str("key", name).Stringer("source", src).Str("value", v).Msg("resolved")
	return v, src, nil
}

func (r *Resolver) computeDefault(ctx context.Context, key Key, deps explainer) (string, error) {
	switch key.Name {
	case NameABI:
		return r.defaultABI, nil

	case NameBuilder:
		out, err := r.runner.Run(ctx, CmdUserName)
		if err != nil {
			log.Debug().Err(err).Msg("git user name unavailable")
			return UnknownBuilder, nil
		}
		if out == "" {
			return UnknownBuilder, nil
		}
		return out, nil

	case NameGitRepo:
		out, err := r.runner.Run(ctx, CmdRemoteURL)
		if err != nil {
			return "", err
		}
		return NormalizeRepoURL(out), nil

	case NameVersionName:
		builder, _, err := deps.Explain(ctx, NameBuilder)
		if err != nil {
			return "", err
		}
		return r.runner.Run(ctx, DescribeCommand(builder))

	case NameCommitHash:
		return r.runner.Run(ctx, CmdRevParseHead)

	case NameTimestamp:
		return strconv.FormatInt(r.now().UnixMilli(), 10), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key.Name)
}

// NormalizeRepoURL turns a GitHub SSH remote into its https form and
// drops a trailing ".git".
func NormalizeRepoURL(remote string) string {
	if rest, ok := strings.CutPrefix(remote, "git@github.com:"); ok {
		remote = "https://github.com/" + rest
	}
	return strings.TrimSuffix(remote, ".git")
}

// DescribeCommand picks the git describe invocation for a builder.
// Nightly builders describe against the "nightly" tag; everyone else
// against release tags, so nightly tags never leak into release versions.
func DescribeCommand(builder string) string {
	if strings.Contains(strings.ToLower(builder), "nightly") {
		return CmdDescribeNightly
	}
	return CmdDescribeRelease
}

func all(ctx context.Context, e explainer) (Metadata, error) {
	var md Metadata
	fields := []struct {
		name string
		dst  *string
	}{
		{NameABI, &md.ABI},
		{NameBuilder, &md.Builder},
		{NameGitRepo, &md.GitRepo},
		{NameVersionName, &md.VersionName},
		{NameCommitHash, &md.CommitHash},
		{NameTimestamp, &md.Timestamp},
	}
	for _, f := range fields {
		v, _, err := e.Explain(ctx, f.name)
		if err != nil {
			return Metadata{}, err
		}
		*f.dst = v
	}
	return md, nil
}
