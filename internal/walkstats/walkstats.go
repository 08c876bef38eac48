// Package walkstats reports cheap pre-scan statistics over the input
// file list, without reading file content. It backs `simrun stats`;
// the index builder does not use it and sizes its prime table from
// the loaded token count instead.
package walkstats

import (
	"fmt"
	"os"
)

// Stats collects pre-evaluation counters over a flat input list: no
// depth or folder count here, since the input is already an
// enumerated list of files rather than a tree to recurse into.
type Stats struct {
	CountFiles   int
	CountMissing int
	MaxSize      int64
	TotalSize    int64
	ErrorMessage error
}

func (s *Stats) String() string {
	if s.ErrorMessage != nil {
		return fmt.Sprintf("stats: an error occurred - %s", s.ErrorMessage.Error())
	}
	f := "files"
	if s.CountFiles == 1 {
		f = "file"
	}
	return fmt.Sprintf("stats: %d %s, total %s, largest %s", s.CountFiles, f, humanReadableBytes(s.TotalSize), humanReadableBytes(s.MaxSize))
}

// Generate stats over the given paths, the same "stat, don't read"
// pre-evaluation GenerateStatistics performs before the (much more
// expensive) full hashing or tokenizing walk. Missing files are
// counted rather than treated as fatal, since `simrun stats` is meant
// to survey an input list a caller may not have fully validated yet.
func Generate(paths []string) Stats {
	var s Stats
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			s.CountMissing++
			continue
		}
		if info.IsDir() {
			s.ErrorMessage = fmt.Errorf("%s is a directory, expected a file", path)
			continue
		}
		size := info.Size()
		if size < 0 {
			size = 0
		}
		s.CountFiles++
		s.TotalSize += size
		if size > s.MaxSize {
			s.MaxSize = size
		}
	}
	return s
}

func humanReadableBytes(count int64) string {
	b := float64(count)
	units := []string{"bytes", "KiB", "MiB", "GiB", "TiB", "PiB"}
	for _, unit := range units {
		if b < 1024 {
			return fmt.Sprintf("%.02f %s", b, unit)
		}
		b /= 1024
	}
	return fmt.Sprintf("%.02f EiB", b)
}
