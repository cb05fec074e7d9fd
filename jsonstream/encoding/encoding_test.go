package encoding

import (
	"encoding/json"
	"testing"
)

func TestStdBackendMarshal(t *testing.T) {
	b, err := StdBackend{}.Marshal(map[string]any{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"a":1}` {
		t.Errorf("got %s", b)
	}
}

func TestJSONIterBackendMatchesStd(t *testing.T) {
	v := map[string]any{"a": 1, "b": []any{true, nil, "x"}}
	std, err := StdBackend{}.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	iter, err := JSONIterBackend{}.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var a, b any
	if err := json.Unmarshal(std, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(iter, &b); err != nil {
		t.Fatal(err)
	}
	stdStr, _ := StdBackend{}.Marshal(a)
	iterStr, _ := StdBackend{}.Marshal(b)
	if string(stdStr) != string(iterStr) {
		t.Errorf("jsoniter output decodes to a different value: %s vs %s", stdStr, iterStr)
	}
}

func TestParseBackendUnknownFallsBackToStd(t *testing.T) {
	enc := ParseBackend("nonsense")
	if _, ok := enc.(StdBackend); !ok {
		t.Errorf("expected ParseBackend to fall back to StdBackend, got %T", enc)
	}
}
