package jsonstream

import (
	"strings"
	"testing"
)

func loadArray(t *testing.T, src string, persistent bool) Array {
	t.Helper()
	v, err := Load(strings.NewReader(src), WithPersistent(persistent))
	if err != nil {
		t.Fatalf("Load(%q): %v", src, err)
	}
	a, ok := v.(Array)
	if !ok {
		t.Fatalf("Load(%q) did not return an Array, got %T", src, v)
	}
	return a
}

func TestArrayTransientSequentialAccess(t *testing.T) {
	a := loadArray(t, `[1,true,""]`, false)

	v1, err := a.Index(1)
	if err != nil {
		t.Fatal(err)
	}
	if v1 != true {
		t.Errorf("index 1 = %#v", v1)
	}

	if _, err := a.Index(0); err == nil {
		t.Fatalf("expected ErrStreamAlreadyPassed for index 0")
	} else if perr, ok := err.(*Error); !ok || perr.Kind != ErrStreamAlreadyPassed {
		t.Errorf("got %v, want ErrStreamAlreadyPassed", err)
	}

	v2, err := a.Index(2)
	if err != nil {
		t.Fatal(err)
	}
	if v2 != "" {
		t.Errorf("index 2 = %#v", v2)
	}

	if _, err := a.Index(3); err == nil {
		t.Fatalf("expected out-of-range error for index 3")
	} else if perr, ok := err.(*Error); !ok || perr.Kind != ErrIndexOutOfRange {
		t.Errorf("got %v, want ErrIndexOutOfRange", err)
	}
}

func TestArrayPersistentRandomAccess(t *testing.T) {
	a := loadArray(t, `[10,20,30]`, true)

	v2, err := a.Index(2)
	if err != nil {
		t.Fatal(err)
	}
	if n := v2.(Number); n.Int.String() != "30" {
		t.Errorf("index 2 = %#v", v2)
	}

	// Out-of-order access is fine for a persistent array.
	v0, err := a.Index(0)
	if err != nil {
		t.Fatal(err)
	}
	if n := v0.(Number); n.Int.String() != "10" {
		t.Errorf("index 0 = %#v", v0)
	}
}

func TestArrayIteratePersistentRestartable(t *testing.T) {
	a := loadArray(t, `[1,2,3]`, true)

	var first, second []int
	for i := range a.Iterate() {
		first = append(first, i)
	}
	for i := range a.Iterate() {
		second = append(second, i)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 elements in each restartable pass, got %v and %v", first, second)
	}
}

func TestArrayLen(t *testing.T) {
	a := loadArray(t, `[1,2,3,4]`, true)
	for range a.Iterate() {
	}
	if a.Len() != 4 {
		t.Errorf("Len() = %d, want 4", a.Len())
	}
}
