/*
convert antiSMASH result JSON to a GFF3 of regions and cluster CDS
*/
package main

import (
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"AmpliconToolkit/pkg/antismash"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"antiSMASH result JSON",
	)
	output = flag.String(
		"o",
		"",
		"output GFF3",
	)
	cdsTag = flag.String(
		"tag",
		"locus_tag",
		"qualifier used as CDS identifier",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" || *output == "" {
		flag.PrintDefaults()
		log.Fatal("-i and -o required!")
	}

	in := osUtil.Open(*input)
	analysis, err := antismash.Parse(in)
	simpleUtil.CheckErr(in.Close())
	if err != nil {
		log.Fatalf("parse [%s]: %v", *input, err)
	}

	lines, err := antismash.BuildGFF(analysis, *cdsTag)
	if err != nil {
		log.Fatalf("build GFF for [%s]: %v", *input, err)
	}

	out := osUtil.Create(*output)
	defer simpleUtil.DeferClose(out)
	simpleUtil.CheckErr(antismash.WriteGFF(out, lines))

	slog.Info("Done", "records", len(analysis.Records), "lines", len(lines), "time", time.Since(t0))
}
