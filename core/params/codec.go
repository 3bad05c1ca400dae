// File: codec.go
// Title: Settings Persistence
// Description: Implements TOML and YAML round-tripping of settings maps
//              through a string-keyed projection.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package params

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	sverror "github.com/mbertram/sview/core/error"
)

// KeyNameFunc renders a key as its file-format name.
type KeyNameFunc[K comparable] func(key K) string

// KeyForFunc resolves a file-format name back to a key. The second return
// reports whether the name is known; unknown names are skipped on decode.
type KeyForFunc[K comparable] func(name string) (K, bool)

// Project returns the explicitly-set values of m keyed by their file-format
// names.
func Project[K comparable](m *Map[K], keyName KeyNameFunc[K]) map[string]interface{} {
	values := m.All()
	out := make(map[string]interface{}, len(values))
	for k, v := range values {
		out[keyName(k)] = v
	}
	return out
}

// EncodeTOML renders the explicitly-set values of m as a TOML document.
func EncodeTOML[K comparable](m *Map[K], keyName KeyNameFunc[K]) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Project(m, keyName)); err != nil {
		return nil, sverror.Wrap(err, "encoding settings as TOML").
			WithCode(sverror.CodeInternal).
			WithOperation("params.EncodeTOML")
	}
	return buf.Bytes(), nil
}

// DecodeTOML parses a TOML document into a fresh settings map. Names that
// keyFor does not recognize are ignored.
func DecodeTOML[K comparable](data []byte, keyFor KeyForFunc[K]) (*Map[K], error) {
	raw := map[string]interface{}{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, sverror.Wrap(err, "decoding TOML settings").
			WithCode(sverror.CodeInvalidInput).
			WithOperation("params.DecodeTOML")
	}
	return fromRaw(raw, keyFor), nil
}

// EncodeYAML renders the explicitly-set values of m as a YAML document.
func EncodeYAML[K comparable](m *Map[K], keyName KeyNameFunc[K]) ([]byte, error) {
	data, err := yaml.Marshal(Project(m, keyName))
	if err != nil {
		return nil, sverror.Wrap(err, "encoding settings as YAML").
			WithCode(sverror.CodeInternal).
			WithOperation("params.EncodeYAML")
	}
	return data, nil
}

// DecodeYAML parses a YAML document into a fresh settings map. Names that
// keyFor does not recognize are ignored.
func DecodeYAML[K comparable](data []byte, keyFor KeyForFunc[K]) (*Map[K], error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, sverror.Wrap(err, "decoding YAML settings").
			WithCode(sverror.CodeInvalidInput).
			WithOperation("params.DecodeYAML")
	}
	return fromRaw(raw, keyFor), nil
}

func fromRaw[K comparable](raw map[string]interface{}, keyFor KeyForFunc[K]) *Map[K] {
	m := NewMap[K]()
	for name, value := range raw {
		if key, ok := keyFor(name); ok {
			m.Set(key, value)
		}
	}
	return m
}
