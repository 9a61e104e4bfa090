// Package trace records one JSON line per top-level statement evaluated
// by an engine run, and lets a host query or patch an existing trace
// file without re-running the program — the debugging aid described in
// the teacher's own JSON-backed interpreter helpers, given a narrower
// home here since exprlang's grammar has no JSON builtins of its own to
// host gjson/sjson on.
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/jleeming/exprlang/internal/ast"
	"github.com/jleeming/exprlang/internal/types"
)

// Entry is one top-level statement's recorded result.
type Entry struct {
	Index  int    `json:"index"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
	Value  string `json:"value"`
}

// Build pairs a program's statements with their evaluated results into
// one Entry per top-level statement. stmts and values must be the same
// length — the slices EvalProgram's caller already has in hand.
func Build(stmts []ast.Node, values []types.Value) []Entry {
	entries := make([]Entry, len(stmts))
	for i, stmt := range stmts {
		pos := stmt.Pos()
		entries[i] = Entry{
			Index:  i,
			Line:   pos.Line,
			Column: pos.Column,
			Kind:   fmt.Sprintf("%T", stmt),
			Value:  values[i].String(),
		}
	}
	return entries
}

// Write emits entries as JSON Lines (one compact JSON object per line)
// to w.
func Write(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes entries as JSON Lines to a new file at path.
func WriteFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, entries)
}

// Get reads the trace file at path and resolves a gjson path against
// the whole document — the trace lines are first joined into a single
// JSON array so paths like "2.value" address the third entry's Value
// field, matching `exprlang inspect trace.jsonl --get 2.value`.
func Get(path, gjsonPath string) (string, error) {
	raw, err := readAsArray(path)
	if err != nil {
		return "", err
	}
	result := gjson.GetBytes(raw, gjsonPath)
	if !result.Exists() {
		return "", fmt.Errorf("trace: path %q not found", gjsonPath)
	}
	return result.String(), nil
}

// Set patches the trace file at path at the given gjson-style path with
// value, then rewrites the file as JSON Lines (one object per line,
// preserving the original entry-per-statement layout).
func Set(path, sjsonPath, value string) error {
	raw, err := readAsArray(path)
	if err != nil {
		return err
	}
	patched, err := sjson.SetBytes(raw, sjsonPath, value)
	if err != nil {
		return err
	}

	var entries []Entry
	if err := json.Unmarshal(patched, &entries); err != nil {
		return fmt.Errorf("trace: patched document is not a valid entry array: %w", err)
	}
	return WriteFile(path, entries)
}

// readAsArray reads a JSON-Lines trace file and returns it re-encoded as
// a single JSON array, the shape gjson/sjson path queries expect.
func readAsArray(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("trace: malformed line: %w", err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return json.Marshal(entries)
}
