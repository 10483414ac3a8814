package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/tokensense"
	"github.com/etnz/tokensense/renderer"
)

// outputFlags are the output options shared by the commands printing a state.
type outputFlags struct {
	json  bool
	query string
}

// writeState prints s as JSON, as the result of a JSONPath query, or as the
// markdown report.
func (o outputFlags) writeState(w io.Writer, s tokensense.State) error {
	switch {
	case o.query != "":
		v, err := queryState(s, o.query)
		if err != nil {
			return err
		}
		return writeJSONLine(w, v)
	case o.json:
		return writeJSONLine(w, s)
	default:
		printMarkdownTo(w, renderer.StateMarkdown(s))
		return nil
	}
}

// queryState evaluates the JSONPath query on the JSON state of s. Numbers are
// kept as written in the state.
func queryState(s tokensense.State, query string) (any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(query, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating query %q: %w", query, err)
	}
	// a single match is printed as is, not as a list of one.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}

func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
