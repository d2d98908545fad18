package keystore_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/idelchi/idmask/entropy"
	"github.com/idelchi/idmask/keystore"
)

func repeatByte(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func TestNewSecretKeyValid(t *testing.T) {
	t.Parallel()

	raw := []byte("9d5100cebffa729aaffecd3ad25dc5aeea4f13bb")[:20]

	k, err := keystore.NewSecretKey(0, raw)
	if err != nil {
		t.Fatalf("NewSecretKey: %v", err)
	}

	if k.ID() != 0 {
		t.Fatalf("ID() = %d, want 0", k.ID())
	}

	if !bytes.Equal(k.Bytes(), raw) {
		t.Fatalf("Bytes() = %x, want %x", k.Bytes(), raw)
	}
}

func TestNewSecretKeyRejectsInvalidID(t *testing.T) {
	t.Parallel()

	raw := repeatByte(0x41, 20)

	for _, id := range []int{-1, keystore.MaxKeyID + 1, 255} {
		if _, err := keystore.NewSecretKey(id, raw); !errors.Is(err, keystore.ErrInvalidArgument) {
			t.Errorf("id=%d: err = %v, want ErrInvalidArgument", id, err)
		}
	}
}

func TestNewSecretKeyRejectsBadLength(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"too_short": keystore.MinKeyLen - 1,
		"too_long":  keystore.MaxKeyLen + 1,
	}

	for name, length := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			raw := make([]byte, length)
			for i := range raw {
				raw[i] = byte(i)
			}

			if _, err := keystore.NewSecretKey(0, raw); !errors.Is(err, keystore.ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestNewSecretKeyRejectsAllZero(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 32)

	if _, err := keystore.NewSecretKey(0, raw); !errors.Is(err, keystore.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestNewSecretKeyRejectsLowEntropy(t *testing.T) {
	t.Parallel()

	// 64 copies of 0x41: entropy is 0 bits/byte.
	raw := repeatByte(0x41, 64)

	if _, err := keystore.NewSecretKey(0, raw); !errors.Is(err, keystore.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestNewSecretKeyFromHex(t *testing.T) {
	t.Parallel()

	const hexKey = "9d5100cebffa729aaffecd3ad25dc5aeea4f13bb"

	k, err := keystore.NewSecretKeyFromHex(3, hexKey)
	if err != nil {
		t.Fatalf("NewSecretKeyFromHex: %v", err)
	}

	if k.ID() != 3 {
		t.Fatalf("ID() = %d, want 3", k.ID())
	}

	want := []byte{
		0x9d, 0x51, 0x00, 0xce, 0xbf, 0xfa, 0x72, 0x9a,
		0xaf, 0xfe, 0xcd, 0x3a, 0xd2, 0x5d, 0xc5, 0xae,
		0xea, 0x4f, 0x13, 0xbb,
	}
	if !bytes.Equal(k.Bytes(), want) {
		t.Fatalf("Bytes() = %x, want %x", k.Bytes(), want)
	}
}

func TestNewSecretKeyFromHexRejectsBadHex(t *testing.T) {
	t.Parallel()

	if _, err := keystore.NewSecretKeyFromHex(0, "not-hex"); !errors.Is(err, keystore.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()

	k, err := keystore.GenerateSecretKey(0, entropy.System{})
	if err != nil {
		t.Fatalf("GenerateSecretKey: %v", err)
	}

	if len(k.Bytes()) != keystore.GeneratedKeyLen {
		t.Fatalf("len(Bytes()) = %d, want %d", len(k.Bytes()), keystore.GeneratedKeyLen)
	}
}

func TestGenerateSecretKeyPropagatesEntropyFailure(t *testing.T) {
	t.Parallel()

	_, err := keystore.GenerateSecretKey(0, failingSource{})
	if err == nil {
		t.Fatal("expected error from failing entropy source")
	}

	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v, want it to wrap the source error", err)
	}
}

type failingSource struct{}

func (failingSource) Generate(int) ([]byte, error) {
	return nil, errFailingSource
}

var errFailingSource = errors.New("boom")
