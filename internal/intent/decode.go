package intent

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineSize bounds a single JSONL line.
const maxLineSize = 1 << 20

// Decode reads JSON Lines intents from r. Blank lines are skipped. A line
// that does not parse, names an unknown type, or lacks required fields fails
// the whole decode with its 1-based line number.
func Decode(r io.Reader) ([]Intent, error) {
	var intents []Intent
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		in, err := decodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		intents = append(intents, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading intents: %w", err)
	}
	return intents, nil
}

func decodeLine(line []byte) (Intent, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()

	var in Intent
	if err := dec.Decode(&in); err != nil {
		return Intent{}, fmt.Errorf("%w: %s", ErrMalformedIntent, err)
	}
	if err := in.Validate(); err != nil {
		return Intent{}, err
	}
	return in, nil
}

// Encode writes intents to w as JSON Lines.
func Encode(w io.Writer, intents []Intent) error {
	enc := json.NewEncoder(w)
	for i, in := range intents {
		if err := enc.Encode(in); err != nil {
			return fmt.Errorf("encoding intent %d: %w", i+1, err)
		}
	}
	return nil
}
