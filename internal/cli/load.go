package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mirrorkit/mirrorkit/pkg/entries"
	mkerrors "github.com/mirrorkit/mirrorkit/pkg/errors"
)

// =============================================================================
// Document Loading
// =============================================================================

// loadValue reads a structured document from path and returns it as a plain
// value tree (maps, slices, scalars). The format is chosen by extension:
// .json, .toml, .yaml, or .yml. The path "-" reads JSON from stdin.
func loadValue(path string) (any, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, mkerrors.Wrap(mkerrors.ErrCodeInternal, err, "read stdin")
		}
		return decodeJSON(data)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mkerrors.Wrap(mkerrors.ErrCodeFileNotFound, err, "read %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON(data)
	case ".toml":
		return decodeTOML(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return nil, mkerrors.New(mkerrors.ErrCodeInvalidFormat,
			"unsupported file extension %q (want .json, .toml, .yaml, or .yml)", filepath.Ext(path))
	}
}

func decodeJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, mkerrors.Wrap(mkerrors.ErrCodeInvalidFormat, err, "parse JSON")
	}
	return v, nil
}

func decodeTOML(data []byte) (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, mkerrors.Wrap(mkerrors.ErrCodeInvalidFormat, err, "parse TOML")
	}
	return v, nil
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, mkerrors.Wrap(mkerrors.ErrCodeInvalidFormat, err, "parse YAML")
	}
	return v, nil
}

// =============================================================================
// Output Encoding
// =============================================================================

// encodeJSON renders v as indented JSON. Values outside JSON's model (frozen
// containers, timestamps) are lowered to plain trees first.
func encodeJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(plain(v, plainDepthLimit), "", "  ")
	if err != nil {
		return nil, mkerrors.Wrap(mkerrors.ErrCodeInternal, err, "encode JSON")
	}
	return append(data, '\n'), nil
}

// plainDepthLimit bounds the lowering recursion independently of the copy
// engine's own limits.
const plainDepthLimit = 99

// plain lowers v to JSON-encodable values: frozen and ordered containers
// become maps and slices, timestamps become RFC 3339 strings.
func plain(v any, depth int) any {
	if depth <= 0 {
		return nil
	}
	switch val := v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case error:
		return val.Error()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plain(item, depth-1)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = plain(item, depth-1)
		}
		return out
	}

	// Frozen and ordered containers expose their contents through the
	// entries extractor; indexed entries become a slice, named ones a map.
	ext := entries.Of(v)
	if len(ext) == 0 {
		return fmt.Sprint(v)
	}
	if ext[0].Key.IsIndex() {
		out := make([]any, 0, len(ext))
		for _, e := range ext {
			out = append(out, plain(e.Value, depth-1))
		}
		return out
	}
	out := make(map[string]any, len(ext))
	for _, e := range ext {
		out[e.Key.String()] = plain(e.Value, depth-1)
	}
	return out
}
