package amplicon

import (
	"sort"
	"strings"
)

// BaseSets maps each IUPAC symbol to the alphabetically sorted, comma-joined
// list of concrete bases it stands for. Covers the four singletons and every
// subset of {A,C,G,T} of size 2, 3 and 4.
var BaseSets = map[byte]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'M': "A,C",
	'R': "A,G",
	'W': "A,T",
	'S': "C,G",
	'Y': "C,T",
	'K': "G,T",
	'V': "A,C,G",
	'H': "A,C,T",
	'D': "A,G,T",
	'B': "C,G,T",
	'N': "A,C,G,T",
}

// AmbiguityCode is the reverse lookup of BaseSets, built once at startup.
var AmbiguityCode = make(map[string]byte, len(BaseSets))

// baseClasses maps each ambiguity symbol to its regex character class.
var baseClasses = make(map[byte]string, len(BaseSets))

func init() {
	for code, bases := range BaseSets {
		AmbiguityCode[bases] = code
		baseClasses[code] = "[" + strings.ReplaceAll(bases, ",", "") + "]"
	}
}

// ResolveBases collapses a set of concrete bases into a single IUPAC symbol.
// ok is false when the sorted, joined set has no registry entry, which only
// happens for an empty set or symbols outside {A,C,G,T}.
func ResolveBases(bases []byte) (byte, bool) {
	sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })
	var parts = make([]string, len(bases))
	for i, b := range bases {
		parts[i] = string(b)
	}
	code, ok := AmbiguityCode[strings.Join(parts, ",")]
	return code, ok
}

// from https://forum.golangbridge.org/t/easy-way-for-letter-substitution-reverse-complementary-dna-sequence/20101
var dnaComplement = strings.NewReplacer(
	"A", "T",
	"T", "A",
	"G", "C",
	"C", "G",
	"a", "t",
	"t", "a",
	"g", "c",
	"c", "g",
)

func Complement(s string) string {
	return dnaComplement.Replace(s)
}

// Reverse returns its argument reversed in place.
func Reverse(r []byte) []byte {
	for i, j := 0, len(r)-1; i < len(r)/2; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}

func ReverseComplement(s string) string {
	return Complement(string(Reverse([]byte(s))))
}
