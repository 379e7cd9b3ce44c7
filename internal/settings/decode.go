package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// decode parses data as one JSON document. For a top-level object it
// returns the keys in first-seen order and the entries, with later
// duplicates overwriting earlier values. Any other document is returned as
// document with nil entries.
//
// Numbers decode as json.Number so integers and decimals survive unchanged.
func decode(data []byte) (keys []string, entries map[string]any, document any, err error) {
	dec := newDecoder(data)

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, nil, invalid(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		document, err = decodeValue(data)
		if err != nil {
			return nil, nil, nil, err
		}
		return nil, nil, document, nil
	}

	entries = map[string]any{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, nil, nil, invalid(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, nil, invalid(fmt.Errorf("unexpected object key %v", tok))
		}

		var value any
		if err = dec.Decode(&value); err != nil {
			return nil, nil, nil, invalid(err)
		}
		if _, seen := entries[key]; !seen {
			keys = append(keys, key)
		}
		entries[key] = value
	}

	// closing brace
	if _, err = dec.Token(); err != nil {
		return nil, nil, nil, invalid(err)
	}
	if err = expectEOF(dec); err != nil {
		return nil, nil, nil, err
	}
	return keys, entries, nil, nil
}

func decodeValue(data []byte) (any, error) {
	dec := newDecoder(data)
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, invalid(err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}
	return value, nil
}

func newDecoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}

func expectEOF(dec *json.Decoder) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return invalid(err)
	}
	return invalid(fmt.Errorf("unexpected trailing data %v", tok))
}

func invalid(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
