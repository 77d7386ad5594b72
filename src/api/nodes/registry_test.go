package nodes

import "testing"

func TestRegistryInsertAndLookup(t *testing.T) {
	r := NewRegistry()
	a := NewSender(1)

	if err := r.Insert("a", a); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := r.Lookup("a")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got != a {
		t.Fatalf("Lookup returned a different node")
	}
}

func TestRegistryRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()
	if err := r.Insert("a", NewSender(1)); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}
	if err := r.Insert("a", NewSender(2)); err == nil {
		t.Fatalf("duplicate name accepted")
	}
	if r.Size() != 1 {
		t.Fatalf("registry size = %d after rejected insert, want 1", r.Size())
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup("ghost"); err == nil {
		t.Fatalf("Lookup of unknown name succeeded")
	}
}

func TestRegistryLookupIDReturnsAllMatches(t *testing.T) {
	r := NewRegistry()
	first := NewSender(7)
	second := NewReceiver(7)
	other := NewSender(8)

	r.Insert("first", first)
	r.Insert("other", other)
	r.Insert("second", second)

	matches := r.LookupID(7)
	if len(matches) != 2 {
		t.Fatalf("LookupID(7) returned %d nodes, want 2", len(matches))
	}
	// insertion order, not lexical order
	if matches[0] != first || matches[1] != second {
		t.Fatalf("LookupID(7) out of insertion order")
	}

	if got := r.LookupID(99); got != nil {
		t.Fatalf("LookupID(99) = %v, want nil", got)
	}
}

func TestRegistryNamesOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		if err := r.Insert(name, NewSender(1)); err != nil {
			t.Fatalf("Insert(%q) failed: %v", name, err)
		}
	}

	names := r.Names()
	want := []string{"c", "a", "b"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}
