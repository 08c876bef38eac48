package walkstats

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.txt")
	big := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(small, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(big, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Generate([]string{small, big, filepath.Join(dir, "missing.txt")})
	if s.CountFiles != 2 {
		t.Errorf("CountFiles = %d, want 2", s.CountFiles)
	}
	if s.CountMissing != 1 {
		t.Errorf("CountMissing = %d, want 1", s.CountMissing)
	}
	if s.TotalSize != 2+11 {
		t.Errorf("TotalSize = %d, want %d", s.TotalSize, 2+11)
	}
	if s.MaxSize != 11 {
		t.Errorf("MaxSize = %d, want 11", s.MaxSize)
	}
}

func TestGenerateRejectsDirectories(t *testing.T) {
	dir := t.TempDir()
	s := Generate([]string{dir})
	if s.ErrorMessage == nil {
		t.Error("expected an error when a path is a directory")
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{CountFiles: 1, TotalSize: 10, MaxSize: 10}
	if got := s.String(); got == "" {
		t.Error("expected a non-empty summary string")
	}
}
