package resolve

import "os"

// Value is an optional string. The zero value is absent.
type Value struct {
	s  string
	ok bool
}

// Some returns a present value.
func Some(s string) Value {
	return Value{s: s, ok: true}
}

// None returns an absent value.
func None() Value {
	return Value{}
}

// Get returns the string and whether it is present.
func (v Value) Get() (string, bool) {
	return v.s, v.ok
}

// Present reports whether the value is set.
func (v Value) Present() bool {
	return v.ok
}

// Env looks up environment variables.
type Env interface {
	Lookup(name string) (string, bool)
}

// Properties looks up project properties. An error means the property
// could not be read; callers treat it as absent.
type Properties interface {
	Property(name string) (Value, error)
}

// OSEnv reads the process environment.
type OSEnv struct{}

// Lookup implements Env.
func (OSEnv) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnv is an Env backed by a map.
type MapEnv map[string]string

// Lookup implements Env.
func (m MapEnv) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// MapProperties is a Properties backed by a map.
type MapProperties map[string]string

// Property implements Properties.
func (m MapProperties) Property(name string) (Value, error) {
	if v, ok := m[name]; ok {
		return Some(v), nil
	}
	return None(), nil
}

// NoProperties has no properties at all.
type NoProperties struct{}

// Property implements Properties.
func (NoProperties) Property(string) (Value, error) {
	return None(), nil
}
