/*
split a cmsearch coords table into SSU and LSU files plus a count summary
*/
package main

import (
	"bufio"
	"flag"
	"log"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input coords table",
	)
	lsu = flag.String(
		"lsu",
		"",
		"LSU model name pattern",
	)
	ssu = flag.String(
		"ssu",
		"",
		"SSU model name pattern",
	)
	outdir = flag.String(
		"d",
		".",
		"output directory for SSU_coords, LSU_coords and RNA-counts",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" || *lsu == "" || *ssu == "" {
		flag.PrintDefaults()
		log.Fatal("-i, -lsu and -ssu required!")
	}

	var (
		in     = osUtil.Open(*input)
		outSSU = osUtil.Create(filepath.Join(*outdir, "SSU_coords"))
		outLSU = osUtil.Create(filepath.Join(*outdir, "LSU_coords"))

		ssuCount = 0
		lsuCount = 0
	)
	defer simpleUtil.DeferClose(outSSU)
	defer simpleUtil.DeferClose(outLSU)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		// LSU wins when both patterns occur on one line
		if strings.Contains(line, *lsu) {
			fmtUtil.Fprintf(outLSU, "%s\n", line)
			lsuCount++
		} else if strings.Contains(line, *ssu) {
			fmtUtil.Fprintf(outSSU, "%s\n", line)
			ssuCount++
		}
	}
	simpleUtil.CheckErr(scanner.Err())
	simpleUtil.CheckErr(in.Close())

	counts := osUtil.Create(filepath.Join(*outdir, "RNA-counts"))
	fmtUtil.Fprintf(counts, "LSU count\t%d\nSSU count\t%d", lsuCount, ssuCount)
	simpleUtil.DeferClose(counts)

	slog.Info("Done", "LSU", lsuCount, "SSU", ssuCount, "time", time.Since(t0))
}
