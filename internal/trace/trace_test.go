package trace

import (
	"path/filepath"
	"testing"

	"github.com/jleeming/exprlang/internal/evaluator"
	"github.com/jleeming/exprlang/internal/parser"
)

func writeSampleTrace(t *testing.T) string {
	t.Helper()
	block, err := parser.Parse("1 + 2; 0.1 + 0.2; 22 / 7;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	values, err := evaluator.New().EvalProgram(block)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	entries := Build(block.Statements, values)
	path := filepath.Join(t.TempDir(), "trace.jsonl")
	if err := WriteFile(path, entries); err != nil {
		t.Fatalf("write error: %v", err)
	}
	return path
}

func TestGet_ResolvesEntryValue(t *testing.T) {
	path := writeSampleTrace(t)
	got, err := Get(path, "2.value")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "22/7" {
		t.Fatalf("got %q, want 22/7", got)
	}
}

func TestSet_PatchesEntryValue(t *testing.T) {
	path := writeSampleTrace(t)
	if err := Set(path, "2.value", "99/1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Get(path, "2.value")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "99/1" {
		t.Fatalf("got %q, want 99/1", got)
	}
}

func TestGet_MissingPathFails(t *testing.T) {
	path := writeSampleTrace(t)
	if _, err := Get(path, "99.value"); err == nil {
		t.Fatal("expected an error for an out-of-range index")
	}
}
