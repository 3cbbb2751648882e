// Package mmapfile memory-maps a file read-only for the aggregator's
// scan. A custom mmap is used (rather than, say, golang.org/x/exp/mmap's
// ReaderAt) because that wrapper copies on every read; the whole point of
// mapping is to let workers scan the page cache directly.
package mmapfile

import (
	"fmt"
	"os"
	"syscall"
)

// Open maps path read-only and returns the mapped bytes plus a Close
// function that unmaps it. The mapping is scoped to the caller: release
// it (via Close) only after every worker reading from it has returned.
func Open(path string) (data []byte, closeFn func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("statting file: %w", err)
	}

	size := fi.Size()
	if size == 0 {
		return nil, func() error { return nil }, nil
	}

	data, err = syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap: %w", err)
	}

	return data, func() error { return syscall.Munmap(data) }, nil
}
