package cryptography
import (
	"errors"
	"fmt"
	"bytes"
	"runtime"
	"crypto/rand"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrNotSealed = errors.New("data is not sealed")
)

// chacha20poly1305 encryption+authentication, the nonce is prepended.
func Encrypt( data, key []byte ) ( []byte, error ) {
	if len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	nonce, err := GenRandom( NonceSize )
	if err != nil {
		return nil, err
	}
	ct := aead.Seal( nil, nonce, data, nil )
	return append( nonce, ct... ), nil
}

func Decrypt( data, key []byte ) ( []byte, error ) {
	if len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}
	if len(data) < NonceSize + TagSize {
		return nil, fmt.Errorf("Invalid length of data")
	}
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	nonce := data[:NonceSize]
	return aead.Open( nil, nonce, data[NonceSize:], nil )
}

// generate a random amount of bytes
func GenRandom( size uint ) ([]byte, error) {
	if size == 0 {
		return nil, fmt.Errorf("GenRandom: Invalid size of random data")
	}
	data := make( []byte, size )
	if _, err := rand.Read( data ); err != nil {
		return nil, err
	}
	return data, nil
}

func DeriveKey( password, saltBytes []byte ) []byte {
	threads := uint8( min( runtime.NumCPU(), 255 ) )
	return argon2.IDKey( password, saltBytes, KdfTime, KdfMemory, threads, SymKeySize )
}

/*
 * password based sealing: SealMagic | salt | nonce | ciphertext.
 * the salt is fresh for every call, so sealing the same data twice gives
 * different blobs.
 */
func Seal( data, password []byte ) ([]byte, error) {
	salt, err := GenRandom( SaltSize )
	if err != nil {
		return nil, err
	}
	ct, err := Encrypt( data, DeriveKey( password, salt ) )
	if err != nil {
		return nil, err
	}
	result := make( []byte, 0, len(SealMagic) + SaltSize + len(ct) )
	result = append( result, SealMagic... )
	result = append( result, salt... )
	return append( result, ct... ), nil
}

func Open( data, password []byte ) ([]byte, error) {
	if IsSealed( data ) == false {
		return nil, ErrNotSealed
	}
	data = data[len(SealMagic):]
	if len(data) < SaltSize {
		return nil, fmt.Errorf("Invalid length of data")
	}
	salt := data[:SaltSize]
	pt, err := Decrypt( data[SaltSize:], DeriveKey( password, salt ) )
	if err != nil {
		return nil, fmt.Errorf("failed to open sealed data (invalid password?): %w", err)
	}
	return pt, nil
}

func IsSealed( data []byte ) bool {
	return bytes.HasPrefix( data, []byte(SealMagic) )
}
