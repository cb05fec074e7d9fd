package jsonstream

import (
	"strings"
	"testing"
)

func TestLoadScalar(t *testing.T) {
	v, err := Load(strings.NewReader("42"))
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.(Number); !ok || n.Int.String() != "42" {
		t.Errorf("got %#v", v)
	}
}

func TestLoadManyBasic(t *testing.T) {
	var values []any
	for result := range LoadMany(strings.NewReader(`1 2 3`)) {
		if result.Err != nil {
			t.Fatal(result.Err)
		}
		values = append(values, result.Value)
	}
	if len(values) != 3 {
		t.Fatalf("got %d values, want 3", len(values))
	}
}

// TestLoadManySkipsAfterItemPartiallyConsumed covers the supplemented
// behavior from original_source/test/test_load_many.py: abandoning a
// document mid-read must not desync the shared cursor for the next one.
func TestLoadManySkipsAfterItemPartiallyConsumed(t *testing.T) {
	src := `{"a":1,"b":2} {"c":3}`
	var seen []string
	for result := range LoadMany(strings.NewReader(src), WithPersistent(true)) {
		if result.Err != nil {
			t.Fatal(result.Err)
		}
		o, ok := result.Value.(Object)
		if !ok {
			t.Fatalf("expected an Object, got %T", result.Value)
		}
		// Only ever touch "a" (if present) on each document; never fully
		// drain the first document before moving to the next.
		if v, err := o.Get("a"); err == nil {
			seen = append(seen, "a="+v.(Number).String())
		} else if v, err := o.Get("c"); err == nil {
			seen = append(seen, "c="+v.(Number).String())
		}
	}
	if len(seen) != 2 {
		t.Fatalf("expected to see both documents, got %v", seen)
	}
	if seen[0] != "a=1" || seen[1] != "c=3" {
		t.Errorf("got %v", seen)
	}
}

func TestLoadGzip(t *testing.T) {
	// GzipNever must leave a plain (non-gzipped) document alone.
	v, err := Load(strings.NewReader(`{"ok":true}`), WithGzip(GzipNever))
	if err != nil {
		t.Fatal(err)
	}
	o := v.(Object)
	ok, err := o.Get("ok")
	if err != nil {
		t.Fatal(err)
	}
	if ok != true {
		t.Errorf("ok = %#v", ok)
	}
}
