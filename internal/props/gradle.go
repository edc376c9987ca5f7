package props

import (
	"github.com/alexiusacademia/buildmeta/internal/resolve"
	"github.com/magiconair/properties"
)

// LoadGradleFile reads a gradle.properties file. ${...} references are
// left as written, as Gradle does.
func LoadGradleFile(path string) (resolve.MapProperties, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}

	m := make(resolve.MapProperties, p.Len())
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		m[key] = v
	}
	return m, nil
}
