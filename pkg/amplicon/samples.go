package amplicon

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SplitDirIntoSamplePaths scans a directory of paired-end fastq files named
// <sample>_1*.fastq* / <sample>_2*.fastq* and returns the unique sample path
// prefixes, sorted.
func SplitDirIntoSamplePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("split dir: %w", err)
	}

	var sampleSet = make(map[string]bool)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.Contains(name, ".fastq") {
			continue
		}
		if !strings.Contains(name, "_1") && !strings.Contains(name, "_2") {
			continue
		}
		sampleSet[filepath.Join(dir, strings.Split(name, "_")[0])] = true
	}

	var samples = make([]string, 0, len(sampleSet))
	for s := range sampleSet {
		samples = append(samples, s)
	}
	sort.Strings(samples)
	return samples, nil
}
