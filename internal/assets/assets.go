// Package assets manages the project's src/main/assets directory and the
// pretty-printed JSON metadata written into it.
package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const (
	// RelDir is the assets directory relative to the project root.
	RelDir = "src/main/assets"
	// MetadataFile is the default name of the metadata file.
	MetadataFile = "build-info.json"
)

// EnsureDir creates <projectDir>/src/main/assets with its parents if
// needed and returns its path.
func EnsureDir(projectDir string) (string, error) {
	dir := filepath.Join(projectDir, filepath.FromSlash(RelDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating assets directory: %w", err)
	}
	return dir, nil
}

// Encoder returns a JSON encoder that pretty-prints with two-space
// indentation and leaves HTML characters unescaped.
func Encoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc
}

// Marshal pretty-prints v. The result ends with a newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes v as pretty JSON to dir/name, replacing any existing
// file, and returns the written path.
func WriteJSON(dir, name string, v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote metadata file")
	return path, nil
}
