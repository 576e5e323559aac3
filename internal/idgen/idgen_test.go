package idgen

import (
	"regexp"
	"testing"
)

func TestNanoID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^donation_[0-9a-z]{21}$`)
	for i := 0; i < 100; i++ {
		id, err := NanoID{}.New("donation_")
		if err != nil {
			t.Fatalf("New() error on iteration %d: %v", i, err)
		}
		if !pattern.MatchString(id) {
			t.Fatalf("New() = %q, does not match %s", id, pattern)
		}
	}
}

func TestNanoID_Uniqueness(t *testing.T) {
	const count = 10_000
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id, err := NanoID{}.New("event_reg_")
		if err != nil {
			t.Fatalf("New() error on iteration %d: %v", i, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID after %d generations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestFunc(t *testing.T) {
	g := Func(func(prefix string) (string, error) { return prefix + "fixed", nil })
	id, err := g.New("contact_")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if id != "contact_fixed" {
		t.Errorf("New() = %q, want %q", id, "contact_fixed")
	}
}
