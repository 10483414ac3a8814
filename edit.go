package tokensense

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Field is a typed string identifying an editable field of the form.
type Field string

// Editable fields.
const (
	FieldSupply   Field = "supply"   // initial supply, grouped integer text
	FieldBurn     Field = "burn"     // burn percentage slider
	FieldPrice    Field = "price"    // price per token
	FieldHoldings Field = "holdings" // holdings amount, grouped integer text
	FieldShare    Field = "share"    // holdings percentage slider
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldSupply, FieldBurn, FieldPrice, FieldHoldings, FieldShare}

// Valid reports whether f is one of Fields.
func (f Field) Valid() bool { return slices.Contains(Fields, f) }

// Edit is one user edit: the raw text entered into a field.
type Edit struct {
	Field Field  // Field is the edited field.
	Value string // Value is the raw text, as typed.
}

// NewEdit returns an Edit of field with raw text value.
func NewEdit(field Field, value string) Edit {
	return Edit{Field: field, Value: value}
}

// MarshalJSON implements the json.Marshaler interface for Edit.
func (e Edit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("field", e.Field)
	w.Append("value", e.Value)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Edit.
// The value can be written as a JSON string (raw text) or a JSON number.
func (e *Edit) UnmarshalJSON(data []byte) error {
	var temp struct {
		Field Field           `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if !temp.Field.Valid() {
		return fmt.Errorf("unknown field %q", temp.Field)
	}
	raw := bytes.TrimSpace(temp.Value)
	var value string
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		return errors.New("value is missing")
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("value must be a string or a number: %w", err)
		}
		value = n.String()
	}
	*e = Edit{Field: temp.Field, Value: value}
	return nil
}

// DecodeEdits reads an edit script in JSONL format, one edit per line.
// Empty lines are skipped.
func DecodeEdits(r io.Reader) ([]Edit, error) {
	var edits []Edit
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var e Edit
		if err := json.Unmarshal(lineBytes, &e); err != nil {
			return nil, fmt.Errorf("line %d: could not decode edit %q: %w", line, string(lineBytes), err)
		}
		edits = append(edits, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edits: %w", err)
	}
	return edits, nil
}

// EncodeEdit appends a single edit to w in JSONL format.
func EncodeEdit(w io.Writer, e Edit) error {
	jsonData, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal edit: %w", err)
	}
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write edit: %w", err)
	}
	return nil
}
