// Package keystore holds validated secret key material and the read-only
// catalog engines use to resolve a key by id.
package keystore

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"github.com/awnumar/memguard"

	"github.com/idelchi/idmask/entropy"
)

const (
	// MaxKeyID is the largest permitted key id; ids are packed into 4 bits
	// of the token version byte alongside the engine id.
	MaxKeyID = 15

	// MinKeyLen and MaxKeyLen bound secret key material length.
	MinKeyLen = 12
	MaxKeyLen = 64

	// MinShannonEntropy is the minimum acceptable Shannon entropy, in bits
	// per byte, of a key's byte distribution.
	MinShannonEntropy = 2.5

	// GeneratedKeyLen is the length used by GenerateSecretKey, the midpoint
	// of [MinKeyLen, MaxKeyLen].
	GeneratedKeyLen = (MinKeyLen + MaxKeyLen) / 2
)

// ErrInvalidArgument is returned when key material or a key id fails the
// construction-time invariants.
var ErrInvalidArgument = errors.New("keystore: invalid argument")

// SecretKey is validated key material bound to a 4-bit id. Its bytes are
// held in a memguard-locked buffer that is zeroed on Destroy.
type SecretKey struct {
	id  int
	buf *memguard.LockedBuffer
}

// NewSecretKey validates raw and, on success, takes ownership of a copy of
// it in locked memory. raw is not retained by the caller's slice.
func NewSecretKey(id int, raw []byte) (*SecretKey, error) {
	if id < 0 || id > MaxKeyID {
		return nil, fmt.Errorf("%w: key id %d outside [0, %d]", ErrInvalidArgument, id, MaxKeyID)
	}

	if len(raw) < MinKeyLen || len(raw) > MaxKeyLen {
		return nil, fmt.Errorf(
			"%w: key length %d outside [%d, %d]",
			ErrInvalidArgument, len(raw), MinKeyLen, MaxKeyLen,
		)
	}

	if allZero(raw) {
		return nil, fmt.Errorf("%w: key material is all-zero", ErrInvalidArgument)
	}

	if h := shannonEntropy(raw); h < MinShannonEntropy {
		return nil, fmt.Errorf(
			"%w: key entropy %.3f bits/byte below minimum %.3f",
			ErrInvalidArgument, h, MinShannonEntropy,
		)
	}

	owned := make([]byte, len(raw))
	copy(owned, raw)

	return &SecretKey{id: id, buf: memguard.NewBufferFromBytes(owned)}, nil
}

// NewSecretKeyFromHex decodes a hex string and delegates to NewSecretKey.
func NewSecretKeyFromHex(id int, hexKey string) (*SecretKey, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex key: %v", ErrInvalidArgument, err)
	}
	defer clear(raw)

	return NewSecretKey(id, raw)
}

// GenerateSecretKey produces GeneratedKeyLen bytes from source and builds a
// SecretKey from them.
func GenerateSecretKey(id int, source entropy.Source) (*SecretKey, error) {
	raw, err := source.Generate(GeneratedKeyLen)
	if err != nil {
		return nil, err
	}
	defer clear(raw)

	return NewSecretKey(id, raw)
}

// ID returns the key's 4-bit id.
func (k *SecretKey) ID() int {
	return k.id
}

// Bytes returns a fresh copy of the key material. Callers are responsible
// for clearing the returned slice once done with it.
func (k *SecretKey) Bytes() []byte {
	out := make([]byte, k.buf.Size())
	copy(out, k.buf.Bytes())

	return out
}

// Destroy zeroes and releases the key's locked buffer. The key must not be
// used afterward.
func (k *SecretKey) Destroy() {
	k.buf.Destroy()
}

func allZero(b []byte) bool {
	var acc byte
	for _, c := range b {
		acc |= c
	}

	return acc == 0
}

func shannonEntropy(b []byte) float64 {
	var counts [256]int
	for _, c := range b {
		counts[c]++
	}

	n := float64(len(b))

	var h float64

	for _, c := range counts {
		if c == 0 {
			continue
		}

		p := float64(c) / n
		h -= p * math.Log2(p)
	}

	return h
}
