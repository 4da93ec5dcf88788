package walls

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var requiredFields = []string{"x1", "y1", "x2", "y2"}

// record is one JSON object keyed by its exact field names. encoding/json
// matches struct tags case-insensitively, so fields are looked up by hand.
type record map[string]json.RawMessage

func (r record) number(key string) (float64, bool, error) {
	raw, ok := r[key]
	if !ok {
		return 0, false, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, true, fmt.Errorf("field %s: not a number", key)
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, true, fmt.Errorf("field %s: not a number", key)
	}
	return v, true, nil
}

func (r record) wall(index int) (Wall, error) {
	if r == nil {
		return Wall{}, fmt.Errorf("record %d: not an object", index)
	}
	var coords [4]float64
	missing := []string{}
	for i, key := range requiredFields {
		v, ok, err := r.number(key)
		if err != nil {
			return Wall{}, fmt.Errorf("record %d: %w", index, err)
		}
		if !ok {
			missing = append(missing, key)
			continue
		}
		coords[i] = v
	}
	if len(missing) > 0 {
		return Wall{}, fmt.Errorf("record %d: missing required field(s) %v", index, missing)
	}
	length, _, err := r.number("length")
	if err != nil {
		return Wall{}, fmt.Errorf("record %d: %w", index, err)
	}
	return Wall{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3], Length: length}, nil
}

// Parse decodes a JSON array of wall objects. The result keeps input order.
// Any malformed record fails the whole payload. A JSON null decodes to an
// empty sequence.
func Parse(data []byte) ([]Wall, error) {
	out, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("walls: %w", err)
	}
	return out, nil
}

func parse(data []byte) ([]Wall, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("payload is empty")
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	out := make([]Wall, 0, len(records))
	for i, r := range records {
		w, err := r.wall(i)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// LoadReader reads the whole stream and parses it.
func LoadReader(r io.Reader) ([]Wall, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("walls: read: %w", err)
	}
	return Parse(content)
}

// Load opens path and parses its contents. The file is closed on every path.
func Load(path string) ([]Wall, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("walls: open %s: %w", path, err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("walls: read %s: %w", path, err)
	}
	out, err := parse(content)
	if err != nil {
		return nil, fmt.Errorf("walls: %s: %w", path, err)
	}
	return out, nil
}
