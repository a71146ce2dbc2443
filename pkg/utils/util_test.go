package utils

import "testing"

func TestGenHashIDRoundTrip(t *testing.T) {
	const salt = "test-salt"

	for _, id := range []int64{1, 42, 987654321, 1<<40 + 7} {
		hash := GenHashID(salt, id)
		if len(hash) < 12 {
			t.Fatalf("hash %q shorter than min length", hash)
		}
		if got := ParseHashID(salt, hash); got != id {
			t.Fatalf("round trip failed: %d -> %q -> %d", id, hash, got)
		}
	}
}

func TestParseHashIDRejectsGarbage(t *testing.T) {
	if got := ParseHashID("salt", "not-a-hash!"); got != 0 {
		t.Fatalf("expected 0 for garbage input, got %d", got)
	}
	// Wrong salt must not decode to the original id.
	hash := GenHashID("salt-a", 77)
	if got := ParseHashID("salt-b", hash); got == 77 {
		t.Fatal("hash decoded with the wrong salt")
	}
}
