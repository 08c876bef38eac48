package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"hash/adler32"
	"hash/crc32"
	"hash/crc64"
	"hash/fnv"

	"golang.org/x/crypto/sha3"
)

// stdHash adapts any stdlib hash.Hash (plus golang.org/x/crypto/sha3's
// fixed-output hashes, which satisfy the same interface) to Algorithm.
// Every registered algorithm shares this exact Size/Reset/ReadFile/
// ReadBytes/Digest shape, so one implementation covers all of them
// instead of one bespoke struct per algorithm.
type stdHash struct {
	name string
	size int
	new  func() hash.Hash
	h    hash.Hash
}

func newStdHash(name string, size int, newFn func() hash.Hash) *stdHash {
	return &stdHash{name: name, size: size, new: newFn, h: newFn()}
}

func (s *stdHash) Name() string { return s.name }
func (s *stdHash) Size() int    { return s.size }
func (s *stdHash) Reset()       { s.h.Reset() }

func (s *stdHash) ReadFile(path string) error {
	s.h.Reset()
	return readFileInto(s.h, path)
}

func (s *stdHash) ReadBytes(data []byte) error {
	s.h.Reset()
	_, err := s.h.Write(data)
	return err
}

func (s *stdHash) Digest() []byte {
	return s.h.Sum(nil)
}

// shakeHash adapts sha3's variable-output ShakeHash to Algorithm;
// outSize fixes how many bytes are squeezed out per Digest call.
type shakeHash struct {
	name    string
	outSize int
	h       sha3.ShakeHash
}

func newShakeHash(name string, outSize int) *shakeHash {
	return &shakeHash{name: name, outSize: outSize, h: sha3.NewShake256()}
}

func (s *shakeHash) Name() string { return s.name }
func (s *shakeHash) Size() int    { return s.outSize }
func (s *shakeHash) Reset()       { s.h.Reset() }

func (s *shakeHash) ReadFile(path string) error {
	s.h.Reset()
	return readFileInto(s.h, path)
}

func (s *shakeHash) ReadBytes(data []byte) error {
	s.h.Reset()
	_, err := s.h.Write(data)
	return err
}

func (s *shakeHash) Digest() []byte {
	out := make([]byte, s.outSize)
	// Read from a clone so repeated Digest calls without an
	// intervening Reset are idempotent, matching stdHash's behavior.
	clone := s.h.Clone()
	clone.Read(out)
	return out
}

// The constructors below each wire one stdlib or x/crypto hash
// constructor into the shared stdHash wrapper.

func newCRC32Hash() hash.Hash { return crc32.NewIEEE() }
func newCRC64Hash() hash.Hash { return crc64.New(crc64.MakeTable(crc64.ISO)) }

func newFNV1_32Hash() hash.Hash   { return fnv.New32() }
func newFNV1_64Hash() hash.Hash   { return fnv.New64() }
func newFNV1_128Hash() hash.Hash  { return fnv.New128() }
func newFNV1a_32Hash() hash.Hash  { return fnv.New32a() }
func newFNV1a_64Hash() hash.Hash  { return fnv.New64a() }
func newFNV1a_128Hash() hash.Hash { return fnv.New128a() }

func newAdler32Hash() hash.Hash { return adler32.New() }

func newMD5Hash() hash.Hash    { return md5.New() }
func newSHA1Hash() hash.Hash   { return sha1.New() }
func newSHA256Hash() hash.Hash { return sha256.New() }
func newSHA512Hash() hash.Hash { return sha512.New() }

func newSHA3_512Hash() hash.Hash { return sha3.New512() }
