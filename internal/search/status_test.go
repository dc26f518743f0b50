package search

import "testing"

func TestStatusRoundTrip(t *testing.T) {
	all := Statuses()
	if len(all) != 9 {
		t.Fatalf("expected 9 statuses, got %d", len(all))
	}
	for _, s := range all {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var got Status
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != s {
			t.Errorf("round trip %v -> %q -> %v", s, text, got)
		}
	}
}

func TestStatusInvalid(t *testing.T) {
	s := Status(42)
	if s.Valid() {
		t.Error("Status(42) reported valid")
	}
	if s.String() != "Status(42)" {
		t.Errorf("String() = %q", s.String())
	}
	if _, err := s.MarshalText(); err == nil {
		t.Error("expected error marshalling invalid status")
	}
	if _, err := ParseStatus("Jumping"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestStatusClasses(t *testing.T) {
	terminal := map[Status]bool{StatusFound: true, StatusDone: true, StatusEmpty: true}
	binary := map[Status]bool{StatusBinaryStart: true, StatusChecking: true, StatusBinaryFailed: true}
	for _, s := range Statuses() {
		if s.Terminal() != terminal[s] {
			t.Errorf("%v.Terminal() = %v", s, s.Terminal())
		}
		if s.Binary() != binary[s] {
			t.Errorf("%v.Binary() = %v", s, s.Binary())
		}
	}
}
