/*
build fuzzy-match regex queries from (ambiguous) primers
and count reads carrying a primer or its reverse complement
*/
package main

import (
	"bufio"
	"flag"
	"log"
	"log/slog"
	"strings"
	"sync"
	"time"

	// "compress/gzip"
	"github.com/cloudflare/ahocorasick"
	gzip "github.com/klauspost/pgzip"

	"github.com/liserjrqlxue/DNA/pkg/util"
	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"

	"AmpliconToolkit/pkg/amplicon"
)

// flag
var (
	primer = flag.String(
		"p",
		"",
		"primer sequence, IUPAC ambiguity symbols allowed",
	)
	input = flag.String(
		"i",
		"",
		"primer list txt with lines of [name]\\t[primer], alternative to -p",
	)
	fq = flag.String(
		"fq",
		"",
		"fastq(.gz) to count primer hits in, comma separated",
	)
	output = flag.String(
		"o",
		"",
		"output",
	)
)

type Primer struct {
	Name  string
	Seq   string
	Query string
	Hits  int
}

func main() {
	t0 := time.Now()
	flag.Parse()
	if *primer == "" && *input == "" {
		flag.PrintDefaults()
		log.Fatal("-p or -i required!")
	}
	if *output == "" {
		flag.PrintDefaults()
		log.Fatal("-o required!")
	}

	var primers = loadPrimers()

	var readCount = 0
	if *fq != "" {
		readCount = countHits(primers, strings.Split(*fq, ","))
	}

	var out = osUtil.Create(*output)
	defer simpleUtil.DeferClose(out)

	fmtUtil.Fprintf(out, "#Name\tPrimer\tQuery\tReadHits\tReadCount\n")
	for _, p := range primers {
		fmtUtil.Fprintf(out, "%s\t%s\t%s\t%d\t%d\n", p.Name, p.Seq, p.Query, p.Hits, readCount)
	}

	slog.Info("Done", "time", time.Since(t0))
}

func loadPrimers() []*Primer {
	var primers []*Primer
	if *primer != "" {
		primers = append(primers, &Primer{Name: "primer", Seq: strings.ToUpper(*primer)})
	} else {
		for _, line := range textUtil.File2Array(*input) {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			primers = append(primers, &Primer{Name: fields[0], Seq: strings.ToUpper(fields[1])})
		}
	}
	for _, p := range primers {
		p.Query = simpleUtil.HandleError(amplicon.PrimerRegexQuery(p.Seq))
	}
	return primers
}

// countHits expands every primer and its reverse complement to concrete
// variants, then counts reads hitting each primer with one Aho-Corasick pass
// per fastq.
func countHits(primers []*Primer, fqList []string) int {
	var (
		patterns     []string
		patternIdx   []int
		totalReads   = 0
		totalReadsMu sync.Mutex
	)
	for i, p := range primers {
		variants := simpleUtil.HandleError(amplicon.ExpandPrimer(p.Seq))
		for _, v := range variants {
			patterns = append(patterns, v, util.ReverseComplement(v))
			patternIdx = append(patternIdx, i, i)
		}
	}
	matcher := ahocorasick.NewStringMatcher(patterns)

	var (
		wg   sync.WaitGroup
		hits = make([][]int, len(fqList))
	)
	for fi, fastq := range fqList {
		wg.Add(1)
		go func(fi int, fastq string) {
			defer wg.Done()
			counts, n := scanFastq(matcher, patternIdx, len(primers), fastq)
			hits[fi] = counts
			totalReadsMu.Lock()
			totalReads += n
			totalReadsMu.Unlock()
		}(fi, fastq)
	}
	wg.Wait()

	for _, counts := range hits {
		for i, c := range counts {
			primers[i].Hits += c
		}
	}
	return totalReads
}

func scanFastq(matcher *ahocorasick.Matcher, patternIdx []int, primerCount int, fastq string) ([]int, int) {
	var (
		file    = osUtil.Open(fastq)
		scanner *bufio.Scanner
		counts  = make([]int, primerCount)
		n       = 0
		reads   = 0
	)
	defer simpleUtil.DeferClose(file)
	if strings.HasSuffix(fastq, ".gz") {
		gr := simpleUtil.HandleError(gzip.NewReader(file))
		defer simpleUtil.DeferClose(gr)
		scanner = bufio.NewScanner(gr)
	} else {
		scanner = bufio.NewScanner(file)
	}

	slog.Info("scanFastq", "fq", fastq)
	for scanner.Scan() {
		n++
		if n%4 != 2 {
			continue
		}
		reads++
		var seen = make(map[int]bool)
		for _, m := range matcher.Match(scanner.Bytes()) {
			seen[patternIdx[m]] = true
		}
		for i := range seen {
			counts[i]++
		}
	}
	simpleUtil.CheckErr(scanner.Err())
	return counts, reads
}
