package amplicon

import (
	"fmt"
	"strings"
)

// PrimerRegexQuery formats a primer that may contain IUPAC ambiguity symbols
// as a fuzzy-match regex query: concrete bases pass through, ambiguity
// symbols become character classes, and the whole pattern allows one edit,
// e.g. "AR" -> "(.*A[AG]){e<=1}". The {e<=1} extension targets fuzzy regex
// engines such as TRE; use MatchPrimerFuzzy for the same semantics in-process.
func PrimerRegexQuery(primer string) (string, error) {
	var query strings.Builder
	for i := 0; i < len(primer); i++ {
		switch c := primer[i]; c {
		case 'A', 'C', 'T', 'G':
			query.WriteByte(c)
		default:
			class, ok := baseClasses[c]
			if !ok {
				return "", fmt.Errorf("primer regex query: invalid IUPAC base %q", c)
			}
			query.WriteString(class)
		}
	}
	return fmt.Sprintf("(.*%s){e<=1}", query.String()), nil
}

// 4-bit mask per base, bit0=A bit1=C bit2=G bit3=T
var iupacMask [256]byte

func init() {
	for code, bases := range BaseSets {
		var bits byte
		for _, b := range bases {
			switch b {
			case 'A':
				bits |= 1
			case 'C':
				bits |= 2
			case 'G':
				bits |= 4
			case 'T':
				bits |= 8
			}
		}
		iupacMask[code] = bits
	}
}

// baseMatch reports whether primer symbol p can pair with read base g.
// Non-ACGT read bases are a hard mismatch.
func baseMatch(g, p byte) bool {
	if g != 'A' && g != 'C' && g != 'G' && g != 'T' {
		return false
	}
	return iupacMask[p]&iupacMask[g] != 0
}

// MatchPrimerFuzzy reports whether the primer occurs in seq with at most one
// edit (insertion, deletion or substitution), honouring IUPAC ambiguity
// symbols in the primer. Equivalent to matching the PrimerRegexQuery pattern.
func MatchPrimerFuzzy(primer, seq string) bool {
	if primer == "" {
		return true
	}
	// semi-global edit distance, free start anywhere in seq
	var (
		m    = len(primer)
		prev = make([]int, m+1)
		curr = make([]int, m+1)
	)
	for j := 1; j <= m; j++ {
		prev[j] = j
	}
	best := prev[m]
	for i := 1; i <= len(seq); i++ {
		curr[0] = 0
		for j := 1; j <= m; j++ {
			cost := 1
			if baseMatch(seq[i-1], primer[j-1]) {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, min(prev[j]+1, curr[j-1]+1))
		}
		if curr[m] < best {
			best = curr[m]
		}
		prev, curr = curr, prev
	}
	return best <= 1
}

// ExpandPrimer enumerates every concrete sequence an ambiguous primer stands
// for, in lexicographic order.
func ExpandPrimer(primer string) ([]string, error) {
	variants := []string{""}
	for i := 0; i < len(primer); i++ {
		bases, ok := BaseSets[primer[i]]
		if !ok {
			return nil, fmt.Errorf("expand primer: invalid IUPAC base %q", primer[i])
		}
		var next []string
		for _, v := range variants {
			for _, b := range strings.Split(bases, ",") {
				next = append(next, v+b)
			}
		}
		variants = next
	}
	return variants, nil
}
