package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4

	keyFilePermissions = 0600

	PurposeSession = "dayadmin session store"
	PurposeCSRF    = "dayadmin csrf"
)

var ErrEmptySecret = errors.New("secret is empty")

// фиксированная соль вывода ключей
var derivationSalt = []byte("dayadmin/key-derivation/v1")

// Keys - независимые ключи, выведенные из секрета сервера
type Keys struct {
	Session []byte
	CSRF    []byte
}

// DeriveKeys растягивает секрет через Argon2id и делит его на подключи через HKDF
func DeriveKeys(secret string) (Keys, error) {
	if secret == "" {
		return Keys{}, ErrEmptySecret
	}

	master := argon2.IDKey([]byte(secret), derivationSalt, argon2Time, argon2Memory, argon2Threads, KeySize)

	sessionKey, err := subkey(master, PurposeSession)
	if err != nil {
		return Keys{}, err
	}
	csrfKey, err := subkey(master, PurposeCSRF)
	if err != nil {
		return Keys{}, err
	}

	return Keys{Session: sessionKey, CSRF: csrfKey}, nil
}

func subkey(master []byte, purpose string) ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(purpose)), key); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", purpose, err)
	}
	return key, nil
}

// LoadOrCreateKey читает ключ из файла или создает новый случайный ключ
func LoadOrCreateKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		key, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil || len(key) != KeySize {
			return nil, fmt.Errorf("%s: %w", path, ErrInvalidKey)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create key directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key)), keyFilePermissions); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return key, nil
}
