/*
count reads in a fastq(.gz) or fasta(.gz) file
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"AmpliconToolkit/pkg/amplicon"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input fastq(.gz) or fasta(.gz)",
	)
	format = flag.String(
		"f",
		"",
		"fastq or fasta, default from input suffix",
	)
	output = flag.String(
		"o",
		"",
		"output, default STDOUT",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" {
		flag.PrintDefaults()
		log.Fatal("-i required!")
	}

	if *format == "" {
		*format = guessFormat(*input)
	}

	count := simpleUtil.HandleError(amplicon.CountReads(*input, *format))

	if *output == "" {
		fmt.Printf("%s\t%d\n", *input, count)
	} else {
		out := osUtil.Create(*output)
		fmtUtil.Fprintf(out, "%s\t%d\n", *input, count)
		simpleUtil.DeferClose(out)
	}

	slog.Info("Done", "input", *input, "format", *format, "count", count, "time", time.Since(t0))
}

func guessFormat(path string) string {
	name := strings.TrimSuffix(path, ".gz")
	switch {
	case strings.HasSuffix(name, ".fastq"), strings.HasSuffix(name, ".fq"):
		return "fastq"
	case strings.HasSuffix(name, ".fasta"), strings.HasSuffix(name, ".fa"):
		return "fasta"
	}
	log.Fatalf("can not guess format of [%s], use -f", path)
	return ""
}
