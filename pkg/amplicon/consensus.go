package amplicon

import (
	"fmt"
	"sort"
	"strings"
)

// Gap is emitted for positions forced out of the consensus.
const Gap = 'N'

type baseProp struct {
	Base byte
	Prop float64
}

// BuildConsSeq resolves a position conservation table into a consensus
// sequence and the per-position confidence of the best-supported base.
//
// readCount is the denominator for confidences; proportions divide by
// maxLineCount instead when it is > 0 (counts pre-capped against a different
// total). Position numbering is 1-based starting at counter; positions listed
// in doNotInclude emit Gap and contribute no confidence entry. Bases outside
// A/T/C/G are discarded. For each remaining position the smallest set of
// bases whose cumulative proportion reaches threshold, taken in descending
// proportion order, is collapsed to a single IUPAC symbol.
//
// The consensus string always has len(consList) symbols; the confidence slice
// is shorter by the number of forced gaps.
func BuildConsSeq(consList []map[byte]int, readCount int, threshold float64, doNotInclude []int, counter int, maxLineCount int) (string, []float64, error) {
	var (
		consSeq   strings.Builder
		consConfs []float64
		skip      = make(map[int]bool, len(doNotInclude))
	)
	for _, p := range doNotInclude {
		skip[p] = true
	}

	denominator := readCount
	if maxLineCount > 0 {
		denominator = maxLineCount
	}

	for _, countDict := range consList {
		if skip[counter] {
			counter++
			consSeq.WriteByte(Gap)
			continue
		}

		var (
			props    []baseProp
			maxCount int
		)
		for _, base := range []byte{'A', 'C', 'G', 'T'} {
			count, ok := countDict[base]
			if !ok {
				continue
			}
			var prop float64
			if denominator != 0 {
				prop = float64(count) / float64(denominator)
			}
			props = append(props, baseProp{Base: base, Prop: prop})
			if count > maxCount {
				maxCount = count
			}
		}

		// division fault fallback: zero reads means zero confidence
		var maxProp float64
		if readCount != 0 {
			maxProp = float64(maxCount) / float64(readCount)
		}

		sort.SliceStable(props, func(i, j int) bool {
			return props[i].Prop > props[j].Prop
		})

		var (
			consBases []byte
			currProp  float64
		)
		for _, bp := range props {
			consBases = append(consBases, bp.Base)
			currProp += bp.Prop
			if currProp >= threshold {
				break
			}
		}

		code, ok := ResolveBases(consBases)
		if !ok {
			return consSeq.String(), consConfs, fmt.Errorf("no ambiguity code for base set %q at position %d", consBases, counter)
		}
		consSeq.WriteByte(code)
		consConfs = append(consConfs, maxProp)
		counter++
	}

	return consSeq.String(), consConfs, nil
}
