package idmask

import (
	"bytes"
	"crypto/cipher"
)

// ecbEncrypt and ecbDecrypt implement raw AES-ECB, block by block, the same
// way gonc's Processor.encryptECB/decryptECB loop over a cipher.Block. The
// standard library deliberately omits an ECB cipher.BlockMode; the 8-byte
// engine's "block mode is irrelevant" construction (spec.md 4.2) only needs
// the block primitive itself.
func ecbEncrypt(block cipher.Block, data []byte) []byte {
	out := make([]byte, len(data))

	size := block.BlockSize()
	for i := 0; i < len(data); i += size {
		block.Encrypt(out[i:i+size], data[i:i+size])
	}

	return out
}

func ecbDecrypt(block cipher.Block, data []byte) []byte {
	out := make([]byte, len(data))

	size := block.BlockSize()
	for i := 0; i < len(data); i += size {
		block.Decrypt(out[i:i+size], data[i:i+size])
	}

	return out
}

// pkcs7PadFullBlock pads data to a multiple of blockSize using the same
// rule as gonc's pkcs7Pad: the padding length is always blockSize minus the
// remainder, so a block-aligned input (as the 8-byte engine's 16-byte
// plaintext always is) receives one full block of padding, not zero. This
// reproduces the published golden vectors byte-for-byte; see DESIGN.md.
func pkcs7PadFullBlock(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	copy(padded[len(data):], bytes.Repeat([]byte{byte(padding)}, padding))

	return padded
}

// fullPaddingBlock returns the padding block pkcs7PadFullBlock appends when
// fed an already block-aligned input: blockSize bytes, each equal to
// blockSize.
func fullPaddingBlock(blockSize int) []byte {
	return bytes.Repeat([]byte{byte(blockSize)}, blockSize)
}

// trimTrailingZeros right-strips zero bytes, recovering a right-zero-padded
// payload. Per spec.md 4.2's documented ambiguity, identifiers whose
// trailing bytes are legitimately zero are indistinguishable from padding;
// callers needing that distinction must agree on a fixed length out of
// band.
func trimTrailingZeros(b []byte) []byte {
	return bytes.TrimRight(b, "\x00")
}
