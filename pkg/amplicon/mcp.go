package amplicon

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"

	// "compress/gzip"
	gzip "github.com/klauspost/pgzip"
)

var gz = regexp.MustCompile(`\.gz$`)

// SeqCount is a frequency table of observed read windows.
type SeqCount map[string]int

// Rank returns the window keys sorted by descending count,
// ties broken by ascending sequence so the order is deterministic.
func (sc SeqCount) Rank() []string {
	var keys = make([]string, 0, len(sc))
	for k := range sc {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if sc[keys[i]] != sc[keys[j]] {
			return sc[keys[i]] > sc[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// FetchMCP scans a fastq file and counts the most-common-prefix windows of
// prefixLen bases taken from the 1-based offset start of every sequence line.
// With rev the whole read is reversed before slicing. Reads shorter than the
// window are truncated silently; an empty slice still counts as a window.
// A maxLineCount > 0 stops the scan once the number of accumulated windows
// exceeds it.
func FetchMCP(fastq string, prefixLen, start int, rev bool, maxLineCount int) (SeqCount, error) {
	file, err := os.Open(fastq)
	if err != nil {
		return nil, fmt.Errorf("fetch mcp: %w", err)
	}
	defer file.Close()

	var scanner *bufio.Scanner
	if gz.MatchString(fastq) {
		gr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("fetch mcp: %w", err)
		}
		defer gr.Close()
		scanner = bufio.NewScanner(gr)
	} else {
		scanner = bufio.NewScanner(file)
	}

	var (
		mcpCount = make(SeqCount)
		n        = -1
		selected = 0
	)
	for scanner.Scan() {
		n++
		if n%4 == 1 {
			var seq = scanner.Text()
			if rev {
				seq = string(Reverse([]byte(seq)))
			}
			mcpCount[sliceWindow(seq, start-1, prefixLen)]++
			selected++
		}
		if maxLineCount > 0 && selected > maxLineCount {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fetch mcp: %w", err)
	}
	return mcpCount, nil
}

// sliceWindow takes seq[lo:lo+length] clamped to the sequence end.
func sliceWindow(seq string, lo, length int) string {
	if lo >= len(seq) {
		return ""
	}
	hi := lo + length
	if hi > len(seq) {
		hi = len(seq)
	}
	return seq[lo:hi]
}
