package cryptography
import (
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	SymKeySize = chacha20poly1305.KeySize
	NonceSize = chacha20poly1305.NonceSize
	TagSize = chacha20poly1305.Overhead
	SaltSize = 16

	// argon2 parameters, the draft RFC recommends time=3 and 32 MB of memory
	KdfTime = 3
	KdfMemory = 32 * 1024

	// prefix of password-sealed blobs
	SealMagic = "PBSEALv1"
)
