// Package digest implements a registry of content-hash algorithms for
// whole input files. It backs the supplementary `simrun digest`
// command and the --dedupe-identical fast path in `simrun compare`.
package digest

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Algorithm is the interface every registered content-hash algorithm
// implements.
type Algorithm interface {
	// Name returns the algorithm's name as used on the command line.
	Name() string
	// Size returns the digest's output size in bytes.
	Size() int
	// Reset returns the hash state to empty, ready for a fresh file.
	Reset()
	// ReadFile updates the hash state with an entire file's content.
	ReadFile(path string) error
	// ReadBytes updates the hash state with the given bytes.
	ReadBytes(data []byte) error
	// Digest returns the raw digest bytes for the current state.
	Digest() []byte
}

// HexDigest returns the hexadecimal representation of a.Digest().
func HexDigest(a Algorithm) string {
	return fmt.Sprintf("%x", a.Digest())
}

// registry lists every supported algorithm by name, cheap checksums
// first and cryptographic hashes last.
var registry = []func() Algorithm{
	func() Algorithm { return newStdHash("crc32", 4, newCRC32Hash) },
	func() Algorithm { return newStdHash("crc64", 8, newCRC64Hash) },
	func() Algorithm { return newStdHash("fnv-1-32", 4, newFNV1_32Hash) },
	func() Algorithm { return newStdHash("fnv-1-64", 8, newFNV1_64Hash) },
	func() Algorithm { return newStdHash("fnv-1-128", 16, newFNV1_128Hash) },
	func() Algorithm { return newStdHash("fnv-1a-32", 4, newFNV1a_32Hash) },
	func() Algorithm { return newStdHash("fnv-1a-64", 8, newFNV1a_64Hash) },
	func() Algorithm { return newStdHash("fnv-1a-128", 16, newFNV1a_128Hash) },
	func() Algorithm { return newStdHash("adler32", 4, newAdler32Hash) },
	func() Algorithm { return newStdHash("md5", 16, newMD5Hash) },
	func() Algorithm { return newStdHash("sha-1", 20, newSHA1Hash) },
	func() Algorithm { return newStdHash("sha-256", 32, newSHA256Hash) },
	func() Algorithm { return newStdHash("sha-512", 64, newSHA512Hash) },
	func() Algorithm { return newStdHash("sha-3-512", 64, newSHA3_512Hash) },
	func() Algorithm { return newShakeHash("shake256-64", 64) },
	func() Algorithm { return newShakeHash("shake256-128", 128) },
}

// Default is the algorithm used when none is specified: a fast, wide
// FNV variant.
const Default = "fnv-1a-128"

// Names returns every supported algorithm name, in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, ctor := range registry {
		names[i] = ctor().Name()
	}
	return names
}

// New returns a fresh Algorithm instance for the given name.
func New(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, ctor := range registry {
		a := ctor()
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("unknown hash algorithm '%s'", name)
}

// Supported reports whether name is a registered algorithm.
func Supported(name string) bool {
	_, err := New(name)
	return err == nil
}

// FileDigest computes the hex digest of a single file's content using
// the named algorithm, without retaining a reusable Algorithm value.
func FileDigest(name, path string) (string, error) {
	a, err := New(name)
	if err != nil {
		return "", err
	}
	if err := a.ReadFile(path); err != nil {
		return "", err
	}
	return HexDigest(a), nil
}

// readFileInto is the shared ReadFile implementation every stdHash-
// and shakeHash-backed algorithm uses: stream the file's bytes
// through the hash state via io.Copy rather than reading it whole
// into memory.
func readFileInto(w io.Writer, path string) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()
	_, err = io.Copy(w, fd)
	return err
}
