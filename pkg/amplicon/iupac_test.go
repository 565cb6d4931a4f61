package amplicon

import (
	"strings"
	"testing"
)

func TestResolveBases(t *testing.T) {
	// Test case 1: every registry entry resolves from its own base set
	for code, bases := range BaseSets {
		set := []byte(strings.ReplaceAll(bases, ",", ""))
		got, ok := ResolveBases(set)
		if !ok {
			t.Errorf("ResolveBases(%q): expected ok, but got !ok", bases)
		}
		if got != code {
			t.Errorf("ResolveBases(%q) = %q; want %q", bases, got, code)
		}
	}

	// Test case 2: order of the input set does not matter
	{
		got, ok := ResolveBases([]byte{'T', 'G', 'A'})
		if !ok || got != 'D' {
			t.Errorf("ResolveBases(TGA) = %q, %v; want 'D', true", got, ok)
		}
	}

	// Test case 3: empty set has no code
	if _, ok := ResolveBases(nil); ok {
		t.Error("Expected !ok for empty base set, but got ok")
	}

	// Test case 4: symbols outside A/C/G/T have no code
	if _, ok := ResolveBases([]byte{'A', 'X'}); ok {
		t.Error("Expected !ok for base set with 'X', but got ok")
	}
}

func TestBaseSetsComplete(t *testing.T) {
	// 4 singletons + 6 pairs + 4 triples + 1 full set
	if len(BaseSets) != 15 {
		t.Errorf("len(BaseSets) = %d; want 15", len(BaseSets))
	}
	for code, bases := range BaseSets {
		parts := strings.Split(bases, ",")
		for i := 1; i < len(parts); i++ {
			if parts[i-1] >= parts[i] {
				t.Errorf("BaseSets[%q] = %q is not sorted", code, bases)
			}
		}
	}
}

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"A", "T"},
		{"ACGT", "ACGT"},
		{"AACCGT", "ACGGTT"},
		{"acgt", "acgt"},
	}
	for _, tt := range tests {
		if got := ReverseComplement(tt.in); got != tt.want {
			t.Errorf("ReverseComplement(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestReverse(t *testing.T) {
	if got := string(Reverse([]byte("ACT"))); got != "TCA" {
		t.Errorf("Reverse(ACT) = %q; want \"TCA\"", got)
	}
	if got := string(Reverse([]byte(""))); got != "" {
		t.Errorf("Reverse(\"\") = %q; want \"\"", got)
	}
}
