package amplicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	// "compress/gzip"
	gzip "github.com/klauspost/pgzip"
)

// CountReads counts the reads in a sequence file. For fastq the physical
// line count is divided by 4; for fasta the '>' record markers are counted.
// The result is never negative; any other outcome is a fatal environment
// problem surfaced as an error.
func CountReads(path, format string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("count reads: %w", err)
	}
	defer file.Close()

	var scanner *bufio.Scanner
	if gz.MatchString(path) {
		gr, err := gzip.NewReader(file)
		if err != nil {
			return 0, fmt.Errorf("count reads: %w", err)
		}
		defer gr.Close()
		scanner = bufio.NewScanner(gr)
	} else {
		scanner = bufio.NewScanner(file)
	}

	var count int
	switch format {
	case "fastq":
		for scanner.Scan() {
			count++
		}
		count /= 4
	case "fasta":
		for scanner.Scan() {
			if strings.HasPrefix(scanner.Text(), ">") {
				count++
			}
		}
	default:
		return 0, fmt.Errorf("count reads: unknown format %q", format)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("count reads: %w", err)
	}
	return count, nil
}
