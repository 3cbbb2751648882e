// Command generate writes data/measurements.txt: N lines drawn from
// data/weather_stations.csv, per spec §4.7.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/coldcutz/onebrc/internal/generate"
	"go.coldcutz.net/go-stuff/utils"
)

const (
	dictPath = "data/weather_stations.csv"
	outPath  = "data/measurements.txt"
)

var seedFlag = flag.Int64("seed", 0, "RNG seed; 0 means seed from process entropy")

func main() {
	flag.Parse()

	_, done, log, err := utils.StdSetup()
	if err != nil {
		panic(err)
	}
	done()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: generate <N>")
		os.Exit(1)
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil || n <= 0 {
		fmt.Fprintln(os.Stderr, "usage: generate <N> (N must be a positive integer)")
		os.Exit(1)
	}

	stations, err := generate.Stations(dictPath)
	if err != nil {
		log.Error("generate failed", "err", err)
		os.Exit(1)
	}

	opt := generate.Options{
		Rows:     n,
		Stations: stations,
		Out:      outPath,
		Batches:  runtime.NumCPU(),
	}
	if *seedFlag != 0 {
		s := uint64(*seedFlag)
		opt.Seed = &s
	}

	if err := generate.Run(opt); err != nil {
		log.Error("generate failed", "err", err)
		os.Exit(1)
	}
	log.Info("measurements written", "rows", n, "out", outPath)
}
