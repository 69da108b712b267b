package schedule

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format names an event encoding.
type Format string

// Supported encodings.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat maps a case-insensitive name to a Format ("yml" is accepted).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
	}
}

// Encode writes events to w in the given format.
func Encode(w io.Writer, events []Event, f Format) error {
	recs := toRecords(events)
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return fmt.Errorf("Encode yaml: %w", err)
		}
		return enc.Close()
	case FormatCBOR:
		data, err := cbor.Marshal(recs)
		if err != nil {
			return fmt.Errorf("Encode cbor: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("Encode(%q): %w", string(f), ErrUnknownFormat)
	}
}

// Decode reads events written by Encode.
func Decode(r io.Reader, f Format) ([]Event, error) {
	var recs []record
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&recs); err != nil {
			return nil, fmt.Errorf("Decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&recs); err != nil {
			return nil, fmt.Errorf("Decode yaml: %w", err)
		}
	case FormatCBOR:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if err := cbor.Unmarshal(data, &recs); err != nil {
			return nil, fmt.Errorf("Decode cbor: %w", err)
		}
	default:
		return nil, fmt.Errorf("Decode(%q): %w", string(f), ErrUnknownFormat)
	}

	events := make([]Event, len(recs))
	for i, rec := range recs {
		d, err := time.Parse(DateLayout, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("Decode: record %d: %w", i, err)
		}
		events[i] = Event{Date: d, Intensity: rec.Intensity, SourceMessage: rec.SourceMessage}
	}
	return events, nil
}
