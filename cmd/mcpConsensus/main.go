/*
derive consensus primer sequence from MCP windows of amplicon reads
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/stringsUtil"

	"AmpliconToolkit/pkg/amplicon"
)

// flag
var (
	fq = flag.String(
		"fq",
		"",
		"input fastq(.gz), comma separated",
	)
	dir = flag.String(
		"d",
		"",
		"input directory of paired fastqs, alternative to -fq",
	)
	prefixLen = flag.Int(
		"l",
		20,
		"MCP window length",
	)
	start = flag.Int(
		"s",
		1,
		"1-based window start",
	)
	rev = flag.Bool(
		"rev",
		false,
		"take windows from reversed reads",
	)
	maxLineCount = flag.Int(
		"max",
		amplicon.MCPMaxLineCount,
		"stop after this many windows, 0 for no cap",
	)
	threshold = flag.Float64(
		"t",
		amplicon.DefaultConsThreshold,
		"consensus coverage threshold",
	)
	skip = flag.String(
		"skip",
		"",
		"1-based positions forced to N, comma separated",
	)
	output = flag.String(
		"o",
		"",
		"output prefix, default from input name",
	)
	cfg = flag.String(
		"config",
		"",
		"thresholds YAML override",
	)
	plot = flag.Bool(
		"plot",
		false,
		"write <prefix>.ACGT.html conservation plot",
	)
	png = flag.Bool(
		"png",
		false,
		"write <prefix>.confidence.png",
	)
	xlsx = flag.Bool(
		"xlsx",
		false,
		"write <prefix>.xlsx per-position report",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *fq == "" && *dir == "" {
		flag.PrintDefaults()
		log.Fatal("-fq or -d required!")
	}

	if *cfg != "" {
		thresholds := simpleUtil.HandleError(amplicon.LoadThresholds(*cfg))
		*maxLineCount = thresholds.MCPMaxLineCount
		*threshold = thresholds.ConsThreshold
	}

	var doNotInclude []int
	if *skip != "" {
		for _, s := range strings.Split(*skip, ",") {
			doNotInclude = append(doNotInclude, stringsUtil.Atoi(s))
		}
	}

	var fqList []string
	if *dir != "" {
		for _, sample := range simpleUtil.HandleError(amplicon.SplitDirIntoSamplePaths(*dir)) {
			for _, suffix := range []string{"_1.fastq.gz", "_2.fastq.gz", "_1.fastq", "_2.fastq"} {
				if _, err := os.Stat(sample + suffix); err == nil {
					fqList = append(fqList, sample+suffix)
				}
			}
		}
		if len(fqList) == 0 {
			log.Fatalf("no paired fastq files under [%s]", *dir)
		}
	} else {
		fqList = strings.Split(*fq, ",")
	}

	for _, fastq := range fqList {
		prefix := *output
		if prefix == "" || len(fqList) > 1 {
			prefix = strings.TrimSuffix(strings.TrimSuffix(fastq, ".gz"), ".fastq")
		}
		runOne(fastq, prefix, doNotInclude)
	}

	slog.Info("Done", "time", time.Since(t0))
}

func runOne(fastq, prefix string, doNotInclude []int) {
	slog.Info("CountReads", "fq", fastq)
	readCount := simpleUtil.HandleError(amplicon.CountReads(fastq, "fastq"))

	slog.Info("FetchMCP", "fq", fastq, "len", *prefixLen, "start", *start, "rev", *rev)
	mcpCount := simpleUtil.HandleError(
		amplicon.FetchMCP(fastq, *prefixLen, *start, *rev, *maxLineCount),
	)
	writeMCP(prefix+".mcp.txt", mcpCount)

	consList := amplicon.BuildConsDictList(mcpCount, *prefixLen)

	// counts beyond the cap never entered the table
	capDenominator := 0
	if *maxLineCount > 0 && readCount > *maxLineCount {
		capDenominator = *maxLineCount
	}
	consSeq, consConfs, err := amplicon.BuildConsSeq(consList, readCount, *threshold, doNotInclude, 1, capDenominator)
	if err != nil {
		log.Fatalf("build consensus for [%s]: %v", fastq, err)
	}

	writeCons(prefix+".cons.txt", consSeq, consConfs)
	slog.Info("Consensus", "fq", fastq, "reads", readCount, "cons", consSeq)

	if *plot {
		amplicon.PlotConsLine(prefix+".ACGT.html", consList)
	}
	if *png {
		simpleUtil.CheckErr(amplicon.PlotConfidence(prefix+".confidence.png", consConfs))
	}
	if *xlsx {
		simpleUtil.CheckErr(amplicon.WriteConsXlsx(prefix+".xlsx", consList, consSeq, consConfs, doNotInclude, readCount))
	}
}

func writeMCP(path string, mcpCount amplicon.SeqCount) {
	out := osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	fmtUtil.Fprintf(out, "#MCP\tCount\n")
	for _, seq := range mcpCount.Rank() {
		fmtUtil.Fprintf(out, "%s\t%d\n", seq, mcpCount[seq])
	}
}

func writeCons(path, consSeq string, consConfs []float64) {
	out := osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	var confs = make([]string, len(consConfs))
	for i, c := range consConfs {
		confs[i] = fmt.Sprintf("%.4f", c)
	}
	fmtUtil.Fprintf(out, "consensus\t%s\n", consSeq)
	fmtUtil.Fprintf(out, "confidence\t%s\n", strings.Join(confs, ","))
}
