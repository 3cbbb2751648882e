// Command aggregate memory-maps a measurements.txt file, shards it across
// the available CPUs, and prints the per-station min/mean/max.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/coldcutz/onebrc/internal/format"
	"github.com/coldcutz/onebrc/internal/mapper"
	"github.com/coldcutz/onebrc/internal/mmapfile"
	"github.com/coldcutz/onebrc/internal/reducer"
	"github.com/coldcutz/onebrc/internal/shard"
	"github.com/coldcutz/onebrc/internal/station"
	"go.coldcutz.net/go-stuff/utils"
)

var (
	cpuprofile = flag.Bool("cpuprofile", false, "write a CPU profile via github.com/pkg/profile")
	memprofile = flag.Bool("memprofile", false, "write a heap profile via github.com/pkg/profile")
	fgprofile  = flag.String("fgprofile", "", "write an fgprof wall-clock profile to `file`")
)

const defaultPath = "data/measurements.txt"

func main() {
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	if *memprofile {
		defer profile.Start(profile.MemProfile).Stop()
	}
	if *fgprofile != "" {
		f, err := os.Create(*fgprofile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer stop()
	}

	_, done, log, err := utils.StdSetup()
	if err != nil {
		panic(err)
	}
	done()

	path := defaultPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	out, err := run(context.Background(), path)
	if err != nil {
		log.Error("aggregate failed", "err", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// numWorkers returns the hardware parallelism, overridden by the WORKERS
// env var when it parses as a positive integer (spec §6).
func numWorkers() int {
	if v := os.Getenv("WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}

func run(ctx context.Context, path string) (string, error) {
	data, closeMmap, err := mmapfile.Open(path)
	if err != nil {
		return "", fmt.Errorf("mapping %s: %w", path, err)
	}
	defer closeMmap()

	k := numWorkers()
	ranges := shard.Split(data, k)
	tables := make([]*station.Table, k)

	// errgroup propagates the first worker error: Wait returns it once
	// every worker has finished (the group's context is discarded, so a
	// failing worker does not stop the others early), and run then returns
	// the error without formatting any result (spec §4.3). The teacher's
	// bare sync.WaitGroup only logged per-worker errors and kept going.
	g, _ := errgroup.WithContext(ctx)
	for i, r := range ranges {
		i, r := i, r
		tbl := mapper.NewTable()
		tables[i] = tbl
		g.Go(func() error {
			if err := mapper.Scan(data[r.Start:r.End], tbl); err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	global := reducer.Merge(tables)
	return format.Render(global), nil
}
