package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io/ioutil"

	"golang.org/x/crypto/scrypt"
)

const saltSize = 32

var ErrDecrypt = errors.New("unable to decrypt: wrong passphrase or corrupted file")

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, 32768, 8, 1, 32)
}

// EncryptFile seals the file named src with a passphrase-derived key and
// writes salt + nonce + ciphertext to dst. Backups are small (config, sqlite
// db, logs), so the whole file is sealed in one shot.
func EncryptFile(src, dst, passphrase string) error {
	plaintext, err := ioutil.ReadFile(src)
	if err != nil {
		return err
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return err
	}

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)

	out := append(salt, nonce...)
	out = append(out, sealed...)

	return ioutil.WriteFile(dst, out, 0600)
}

// DecryptFile reverses EncryptFile. A wrong passphrase fails closed with
// ErrDecrypt.
func DecryptFile(src, dst, passphrase string) error {
	data, err := ioutil.ReadFile(src)
	if err != nil {
		return err
	}

	if len(data) < saltSize {
		return ErrDecrypt
	}
	salt := data[:saltSize]

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	if len(data) < saltSize+gcm.NonceSize() {
		return ErrDecrypt
	}
	nonce := data[saltSize : saltSize+gcm.NonceSize()]

	plaintext, err := gcm.Open(nil, nonce, data[saltSize+gcm.NonceSize():], nil)
	if err != nil {
		return ErrDecrypt
	}

	return ioutil.WriteFile(dst, plaintext, 0600)
}
