// Package chash computes the 128-bit content digests the catalog store is
// built on: diff fingerprints and hash-chained version tokens.
//
// Digests are BLAKE2b truncated to 16 bytes by configuration, computed over
// the canonical JSON encoding of a value. Canonical means the encoder sorts
// map keys, so two equal values always produce the same bytes. BLAKE2b is
// keyless and unseeded here, which keeps digests stable across process
// restarts; a randomly seeded hasher would break log replay and token
// comparison between runs.
package chash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	jsoniter "github.com/json-iterator/go"
	blake2b "github.com/minio/blake2b-simd"
)

// Size is the digest width in bytes.
const Size = 16

// Hash128 is a 128-bit content digest. It is comparable; the zero value is
// also the version token of a freshly added record.
type Hash128 [Size]byte

// Zero is the all-zero digest.
var Zero = Hash128{}

var ErrBadDigest = errors.New("chash: bad digest encoding")

var canonical = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

func newHasher() hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: Size})
	if err != nil {
		panic(fmt.Sprintf("chash: blake2b config rejected: %v", err))
	}
	return h
}

// Sum digests the canonical JSON encoding of v. Equal values yield equal
// digests regardless of map insertion order. Panics if v cannot be encoded;
// the store only ever hashes plain data records.
func Sum(v any) Hash128 {
	data, err := canonical.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("chash: unencodable value %T: %v", v, err))
	}
	return SumBytes(data)
}

// SumBytes digests raw bytes.
func SumBytes(data []byte) (sum Hash128) {
	h := newHasher()
	_, _ = h.Write(data)
	copy(sum[:], h.Sum(nil))
	return
}

// Chain folds digest b into the running digest a. The order of arguments is
// significant: a chained token encodes the exact sequence of accepted
// diffs, not merely their set.
func Chain(a, b Hash128) (sum Hash128) {
	h := newHasher()
	_, _ = h.Write(a[:])
	_, _ = h.Write(b[:])
	copy(sum[:], h.Sum(nil))
	return
}

func (h Hash128) String() string { return hex.EncodeToString(h[:]) }

func (h Hash128) IsZero() bool { return h == Zero }

// Bytes returns the digest as a fresh slice.
func (h Hash128) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, h[:])
	return b
}

// FromBytes rebuilds a digest from its Bytes form.
func FromBytes(data []byte) (h Hash128, err error) {
	if len(data) != Size {
		return Zero, errors.Join(ErrBadDigest, fmt.Errorf("want %d bytes, got %d", Size, len(data)))
	}
	copy(h[:], data)
	return h, nil
}

// Parse decodes the hex form produced by String.
func Parse(s string) (Hash128, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Zero, errors.Join(ErrBadDigest, err)
	}
	return FromBytes(data)
}

// MarshalText encodes the digest as hex, so tokens embedded in JSON (audit
// payloads) stay human-readable.
func (h Hash128) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash128) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
