// Package resolve implements the layered lookup used for every build
// metadata value: environment variable, then project property, then a
// computed default.
package resolve

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Source identifies which tier produced a resolved value.
type Source int

const (
	SourceEnv Source = iota
	SourceProperty
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceEnv:
		return "env"
	case SourceProperty:
		return "property"
	case SourceDefault:
		return "default"
	}
	return "unknown"
}

// DefaultFunc computes the fallback value. It may run commands or read the clock.
type DefaultFunc func() (string, error)

// Resolve returns the environment variable envName if it is set and not
// blank, else the project property propName if present, else the result
// of computeDefault. Values are returned verbatim; blankness is only used
// to decide whether the environment variable counts as set.
//
// A failure to read the property is logged and treated as absent.
func Resolve(env Env, props Properties, envName, propName string, computeDefault DefaultFunc) (string, Source, error) {
	if envName == "" || propName == "" {
		panic("resolve: empty key name")
	}

	if v, ok := env.Lookup(envName); ok && strings.TrimSpace(v) != "" {
		log.Debug().Str("env", envName).Msg("resolved from environment")
		return v, SourceEnv, nil
	}

	if props != nil {
		val, err := props.Property(propName)
		if err != nil {
			log.Debug().Err(err).Str("property", propName).Msg("property unreadable, treating as absent")
		} else if v, ok := val.Get(); ok {
			log.Debug().Str("property", propName).Msg("resolved from project property")
			return v, SourceProperty, nil
		}
	}

	v, err := computeDefault()
	if err != nil {
		return "", SourceDefault, err
	}
	log.Debug().Str("env", envName).Str("property", propName).Msg("resolved from default")
	return v, SourceDefault, nil
}
