package digest

import (
	"os"
	"path/filepath"
	"testing"
)

// TestNamesAreUnique checks that every registered algorithm reports a
// distinct name.
func TestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range Names() {
		if seen[name] {
			t.Errorf("duplicate algorithm name %q", name)
		}
		seen[name] = true
	}
	if len(seen) != len(registry) {
		t.Errorf("expected %d distinct names, got %d", len(registry), len(seen))
	}
}

// TestRequiredAlgorithms checks that the algorithms simrun documents
// as supported (DESIGN.md's internal/digest entry) actually resolve.
func TestRequiredAlgorithms(t *testing.T) {
	required := []string{"crc32", "crc64", "fnv-1a-32", "fnv-1a-128", "sha-256", "sha-512", "sha-3-512", "shake256-64"}
	for _, name := range required {
		if !Supported(name) {
			t.Errorf("algorithm %q should be supported but isn't", name)
		}
	}
}

func TestNewUnknownAlgorithm(t *testing.T) {
	if _, err := New("not-a-real-algorithm"); err == nil {
		t.Error("expected an error for an unknown algorithm name")
	}
}

// TestDigestSizeMatchesSize checks that every registered algorithm's
// Digest() output length matches the Size() it advertises.
func TestDigestSizeMatchesSize(t *testing.T) {
	for _, name := range Names() {
		a, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := a.ReadBytes([]byte("simrun near-duplicate detector")); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := len(a.Digest()); got != a.Size() {
			t.Errorf("%s: digest length %d, want Size() %d", name, got, a.Size())
		}
	}
}

// TestReadBytesDeterministic checks that hashing the same bytes twice,
// with a Reset in between, reproduces the same digest.
func TestReadBytesDeterministic(t *testing.T) {
	for _, name := range Names() {
		a, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := a.ReadBytes([]byte("abc")); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		first := HexDigest(a)

		a.Reset()
		if err := a.ReadBytes([]byte("abc")); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		second := HexDigest(a)

		if first != second {
			t.Errorf("%s: digest not deterministic: %s != %s", name, first, second)
		}
	}
}

// TestReadFileMatchesReadBytes checks that hashing a file's content
// produces the same digest as hashing the same bytes directly.
func TestReadFileMatchesReadBytes(t *testing.T) {
	content := []byte("duplicate text runs across files\n")
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, name := range Names() {
		viaBytes, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := viaBytes.ReadBytes(content); err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		viaFile, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := viaFile.ReadFile(path); err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		if HexDigest(viaBytes) != HexDigest(viaFile) {
			t.Errorf("%s: ReadFile/ReadBytes disagree", name)
		}
	}
}

func TestFileDigest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FileDigest(Default, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Error("expected a non-empty hex digest")
	}

	if _, err := FileDigest(Default, filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
