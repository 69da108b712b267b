package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pixelcal/internal/logging"
)

type fileKind int

const (
	kindYAML fileKind = iota
	kindJSON
)

func kindOf(path string) (fileKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kindYAML, nil
	case ".json", ".jsonc":
		return kindJSON, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownExt)
	}
}

// Load reads path over Default and validates the result. YAML is chosen for
// .yaml/.yml, JSON with comments and trailing commas for .json/.jsonc.
func Load(path string) (*Config, error) {
	kind, err := kindOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	if err := cfg.decode(data, kind); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Logger().Debug("config: loaded", "path", path)
	return cfg, nil
}

// Parse decodes YAML data over Default and validates the result. JSON is
// valid YAML, so this also accepts plain JSON.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data, kindYAML); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte, kind fileKind) error {
	switch kind {
	case kindJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return fmt.Errorf("parsing json: %w", err)
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return fmt.Errorf("parsing yaml: %w", err)
		}
	}
	return nil
}

// Save writes c to path in the format implied by its extension.
func Save(path string, c *Config) error {
	kind, err := kindOf(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch kind {
	case kindJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(c)
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(c)
		if err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
