package pin

import (
	"bytes"
	"testing"
)

func TestDigestIsFixedSizeAndDeterministic(t *testing.T) {
	h := SHA3Hasher{}

	first := h.Digest("1234")
	second := h.Digest("1234")

	if len(first) != 32 {
		t.Fatalf("digest length=%d want=32", len(first))
	}
	if !bytes.Equal(first, second) {
		t.Fatal("same PIN produced different digests")
	}
}

func TestDifferentPINsDiffer(t *testing.T) {
	h := SHA3Hasher{}

	base := h.Digest("1234")
	for _, other := range []string{"1235", "123", "12345", "", "4321"} {
		if bytes.Equal(base, h.Digest(other)) {
			t.Fatalf("PIN %q collided with 1234", other)
		}
	}
}

func TestEqualComparesWholeBuffer(t *testing.T) {
	h := SHA3Hasher{}

	a := h.Digest("1234")
	if !h.Equal(a, h.Digest("1234")) {
		t.Fatal("equal digests reported unequal")
	}
	if h.Equal(a, h.Digest("4321")) {
		t.Fatal("unequal digests reported equal")
	}
	// A digest prefix must not compare equal to the full digest.
	if h.Equal(a, a[:16]) {
		t.Fatal("prefix compared equal to full digest")
	}
}
