// Package decode reads document files into value trees. The comparison
// engine never touches files; everything that can fail on the way from
// bytes to a Value happens here and is fatal to the invocation.
//
// The format is chosen by file extension: .json (the default for unknown
// extensions), .yaml/.yml, and .toml. A trailing .gz or .zst suffix is
// stripped first and enables transparent decompression.
package decode

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"semdiff/internal/errors"
	"semdiff/internal/value"
)

// File reads and decodes the document at path.
func File(path string) (*value.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.IOError, fmt.Sprintf("cannot open %s", path), err)
	}
	defer func() { _ = f.Close() }()

	name := filepath.Base(path)
	reader, closer, name, err := decompress(f, name)
	if err != nil {
		return nil, errors.New(errors.DecodeError, fmt.Sprintf("cannot decompress %s", path), err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	raw, err := decodeReader(reader, formatFor(name))
	if err != nil {
		return nil, errors.New(errors.DecodeError, fmt.Sprintf("cannot decode %s", path), err)
	}

	v, err := value.FromInterface(raw)
	if err != nil {
		return nil, errors.New(errors.DecodeError, fmt.Sprintf("unsupported content in %s", path), err)
	}
	return v, nil
}

type format string

const (
	formatJSON format = "json"
	formatYAML format = "yaml"
	formatTOML format = "toml"
)

// formatFor maps a (decompression-stripped) file name to a decoder.
func formatFor(name string) format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	default:
		return formatJSON
	}
}

// decompress wraps r when name carries a compression suffix and returns the
// name with that suffix removed. The returned closer, when non-nil, releases
// the decompressor and must be closed by the caller.
func decompress(r io.Reader, name string) (io.Reader, io.Closer, string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, name, err
		}
		return gr, gr, strings.TrimSuffix(name, filepath.Ext(name)), nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, name, err
		}
		rc := zr.IOReadCloser()
		return rc, rc, strings.TrimSuffix(name, filepath.Ext(name)), nil
	default:
		return r, nil, name, nil
	}
}

func decodeReader(r io.Reader, f format) (interface{}, error) {
	switch f {
	case formatYAML:
		var raw interface{}
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	case formatTOML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		var raw map[string]interface{}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	default:
		dec := json.NewDecoder(r)
		// UseNumber keeps the exact-integer / floating distinction.
		dec.UseNumber()
		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		// A document is a single value; trailing content is malformed.
		if dec.More() {
			return nil, fmt.Errorf("trailing content after document")
		}
		return raw, nil
	}
}
