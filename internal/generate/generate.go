// Package generate produces measurements.txt from a weather-station
// dictionary: N lines of "<station>;<temp>\n", station drawn uniformly
// from the dictionary, temp drawn uniformly from [-99.9, 99.9).
//
// Grounded on original_source/src/generator.rs: comment lines in the
// dictionary start with '#', the station is the text before the first
// ';', and concurrent batches share one output file through a single
// serializing writer.
package generate

import (
	"bufio"
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"

	"github.com/dolthub/swiss"
)

// Stations reads a dictionary file shaped like weather_stations.csv:
// "name;<anything>\n" lines, '#'-prefixed lines are comments. Returns the
// unique station names in first-seen order.
func Stations(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	// dolthub/swiss is the open-addressed dedup set and names keeps the
	// first-seen order; the teacher imported this dependency but never
	// called it.
	seen := swiss.NewMap[string, struct{}](uint32(1024))
	var names []string

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		name, _, ok := strings.Cut(line, ";")
		if !ok {
			continue
		}
		if _, ok := seen.Get(name); !ok {
			seen.Put(name, struct{}{})
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("dictionary %s contains no station names", path)
	}
	return names, nil
}

// Options configures a generation run.
type Options struct {
	Rows     int
	Stations []string
	Out      string
	Batches  int     // 0 or less means a single batch
	Seed     *uint64 // nil means seed from process entropy
}

// Run writes Options.Rows lines to Options.Out, partitioning the work
// into batches that each own an independent *rand.Rand (seeded off the
// parent so batches don't contend on a shared generator) and append
// their buffer to the file under a single mutex, so no line is ever
// interleaved with another (spec §4.7, §5 "Generator concurrency").
func Run(opt Options) error {
	if opt.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", opt.Rows)
	}
	if len(opt.Stations) == 0 {
		return fmt.Errorf("no stations to sample from")
	}

	batches := opt.Batches
	if batches <= 0 {
		batches = 1
	}

	f, err := os.Create(opt.Out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", opt.Out, err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1<<20)
	var mu sync.Mutex

	var parentSeed uint64
	if opt.Seed != nil {
		parentSeed = *opt.Seed
	} else {
		parentSeed = rand.Uint64()
	}

	rowsPerBatch := opt.Rows / batches
	remainder := opt.Rows % batches

	var wg sync.WaitGroup
	errs := make([]error, batches)
	for b := 0; b < batches; b++ {
		n := rowsPerBatch
		if b == batches-1 {
			n += remainder
		}
		wg.Add(1)
		go func(b, n int) {
			defer wg.Done()
			errs[b] = writeBatch(&mu, w, opt.Stations, n, parentSeed+uint64(b)*0x9E3779B97F4A7C15)
		}(b, n)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("generating batch: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", opt.Out, err)
	}
	return nil
}

// writeBatch draws n rows and appends them as one contiguous write under
// mu, so the append is atomic with respect to other batches.
func writeBatch(mu *sync.Mutex, w *bufio.Writer, stations []string, n int, seed uint64) error {
	rng := rand.New(rand.NewPCG(seed, seed^0xD1B54A32D192ED03))

	var buf bytes.Buffer
	buf.Grow(n * 16)
	for i := 0; i < n; i++ {
		station := stations[rng.IntN(len(stations))]
		temp := -99.9 + rng.Float64()*(99.9-(-99.9))
		fmt.Fprintf(&buf, "%s;%.1f\n", station, temp)
	}

	mu.Lock()
	defer mu.Unlock()
	_, err := w.Write(buf.Bytes())
	return err
}
