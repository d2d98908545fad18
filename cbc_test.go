package idmask

import (
	"bytes"
	"crypto/aes"
	"testing"
)

func TestEcbRoundTrip(t *testing.T) {
	t.Parallel()

	key := make([]byte, aesKeySize)
	for i := range key {
		key[i] = byte(i)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}

	plaintext := []byte("0123456789abcdef0123456789abcdef") // exactly 2 AES blocks

	ciphertext := ecbEncrypt(block, plaintext)
	if len(ciphertext) != len(plaintext) {
		t.Fatalf("ecbEncrypt length = %d, want %d", len(ciphertext), len(plaintext))
	}

	if bytes.Equal(ciphertext, plaintext) {
		t.Fatal("ecbEncrypt returned plaintext unchanged")
	}

	recovered := ecbDecrypt(block, ciphertext)
	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("ecbDecrypt(ecbEncrypt(p)) = %x, want %x", recovered, plaintext)
	}
}

func TestEcbIsBlockIndependent(t *testing.T) {
	t.Parallel()

	key := make([]byte, aesKeySize)

	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}

	oneBlock := make([]byte, 16)
	twoBlocks := append(append([]byte{}, oneBlock...), oneBlock...)

	ciphertext := ecbEncrypt(block, twoBlocks)

	if !bytes.Equal(ciphertext[:16], ciphertext[16:]) {
		t.Fatal("ECB encryption of two identical blocks produced different ciphertext blocks")
	}
}

func TestPkcs7PadFullBlockAlwaysAddsAFullBlock(t *testing.T) {
	t.Parallel()

	const blockSize = 16

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32} {
		data := make([]byte, n)

		padded := pkcs7PadFullBlock(data, blockSize)

		wantLen := (n/blockSize + 1) * blockSize
		if n%blockSize == 0 {
			wantLen = n + blockSize
		}

		if len(padded) != wantLen {
			t.Fatalf("pkcs7PadFullBlock(%d bytes): len = %d, want %d", n, len(padded), wantLen)
		}

		if !bytes.Equal(padded[:n], data) {
			t.Fatalf("pkcs7PadFullBlock(%d bytes): prefix was modified", n)
		}
	}
}

func TestFullPaddingBlockIsAllBlockSizeBytes(t *testing.T) {
	t.Parallel()

	got := fullPaddingBlock(16)
	if len(got) != 16 {
		t.Fatalf("fullPaddingBlock(16): len = %d, want 16", len(got))
	}

	for _, b := range got {
		if b != 16 {
			t.Fatalf("fullPaddingBlock(16) contains byte %#x, want 0x10", b)
		}
	}
}

func TestTrimTrailingZeros(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   []byte
		want []byte
	}{
		{[]byte{1, 2, 3, 0, 0, 0}, []byte{1, 2, 3}},
		{[]byte{0, 0, 0}, []byte{}},
		{[]byte{1, 0, 2, 0}, []byte{1, 0, 2}},
		{[]byte{}, []byte{}},
	}

	for _, tc := range cases {
		got := trimTrailingZeros(tc.in)
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("trimTrailingZeros(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
