package jsonstream

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToStandardTypes(t *testing.T) {
	v, err := Load(strings.NewReader(`{"a":1,"b":[true,null,"x"]}`), WithPersistent(true))
	if err != nil {
		t.Fatal(err)
	}
	got := ToStandardTypes(v)
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", got)
	}
	if n := m["a"].(Number); n.Int.String() != "1" {
		t.Errorf("a = %#v", m["a"])
	}
	arr, ok := m["b"].([]any)
	if !ok {
		t.Fatalf("expected []any for b, got %T", m["b"])
	}
	want := []any{true, nil, "x"}
	if diff := cmp.Diff(want, arr); diff != "" {
		t.Errorf("b mismatch (-want +got):\n%s", diff)
	}
}

func TestToStandardTypesStreamingString(t *testing.T) {
	v, err := Load(strings.NewReader(`"hello"`), WithStringsAsStreams(true))
	if err != nil {
		t.Fatal(err)
	}
	if got := ToStandardTypes(v); got != "hello" {
		t.Errorf("got %#v", got)
	}
}
