package jsonstream

import (
	"strings"
	"testing"
)

func loadObject(t *testing.T, src string, persistent bool) Object {
	t.Helper()
	v, err := Load(strings.NewReader(src), WithPersistent(persistent))
	if err != nil {
		t.Fatalf("Load(%q): %v", src, err)
	}
	o, ok := v.(Object)
	if !ok {
		t.Fatalf("Load(%q) did not return an Object, got %T", src, v)
	}
	return o
}

func TestObjectPersistentGetRepeatable(t *testing.T) {
	o := loadObject(t, `{"a":1,"b":null,"c":true}`, true)

	a, err := o.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := a.(Number); !ok || n.Int.String() != "1" {
		t.Errorf("a = %#v", a)
	}

	// Persistent: re-fetching an already-seen key must succeed.
	a2, err := o.Get("a")
	if err != nil {
		t.Fatalf("second Get(a) on persistent object: %v", err)
	}
	if n := a2.(Number); n.Int.String() != "1" {
		t.Errorf("second a = %#v", a2)
	}

	c, err := o.Get("c")
	if err != nil {
		t.Fatal(err)
	}
	if c != true {
		t.Errorf("c = %#v", c)
	}
}

func TestObjectTransientAlreadyPassed(t *testing.T) {
	o := loadObject(t, `{"a":1,"b":null,"c":true}`, false)

	b, err := o.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	if b != nil {
		t.Errorf("b = %#v, want nil", b)
	}

	// "a" came before "b" in the stream; it has already been passed.
	if _, err := o.Get("a"); err == nil {
		t.Fatalf("expected ErrStreamAlreadyPassed fetching already-passed key")
	} else if perr, ok := err.(*Error); !ok || perr.Kind != ErrStreamAlreadyPassed {
		t.Errorf("got error %v, want ErrStreamAlreadyPassed", err)
	}
}

func TestObjectTransientMissingKeyThenAlreadyPassed(t *testing.T) {
	o := loadObject(t, `{"a":1,"b":null,"c":true}`, false)

	if _, err := o.Get("d"); err == nil {
		t.Fatalf("expected missing-key error")
	} else if perr, ok := err.(*Error); !ok || perr.Kind != ErrMissingKey {
		t.Errorf("got error %v, want ErrMissingKey", err)
	}

	// Get("d") drained the whole stream, passing "a" on the way, so "a"
	// now reads as already passed.
	if _, err := o.Get("a"); err == nil {
		t.Fatalf("expected ErrStreamAlreadyPassed fetching a key the exhausted stream passed")
	} else if perr, ok := err.(*Error); !ok || perr.Kind != ErrStreamAlreadyPassed {
		t.Errorf("got error %v, want ErrStreamAlreadyPassed", err)
	}
}

func TestObjectGetDefault(t *testing.T) {
	o := loadObject(t, `{"a":1}`, true)
	if v := o.GetDefault("missing", "fallback"); v != "fallback" {
		t.Errorf("got %#v", v)
	}
	if v := o.GetDefault("a", "fallback"); v.(Number).Int.String() != "1" {
		t.Errorf("got %#v", v)
	}
}

func TestObjectItemsPersistentRestartable(t *testing.T) {
	o := loadObject(t, `{"a":1,"b":2}`, true)

	var first []string
	for k := range o.Keys() {
		first = append(first, k)
	}
	var second []string
	for k := range o.Keys() {
		second = append(second, k)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected two restartable passes of 2 keys each, got %v and %v", first, second)
	}
}

func TestObjectTransientIterateOnceOnly(t *testing.T) {
	o := loadObject(t, `{"a":1,"b":2}`, false)
	for range o.Items() {
	}
	for range o.Items() {
		t.Fatalf("second Items() call on transient object should yield nothing")
	}
}

func TestObjectNestedContainerSkippedSafely(t *testing.T) {
	o := loadObject(t, `{"a":{"x":1,"y":2},"b":3}`, true)
	// Never touch "a"'s nested object at all; "b" must still be reachable.
	b, err := o.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	if n := b.(Number); n.Int.String() != "3" {
		t.Errorf("b = %#v", b)
	}
}
