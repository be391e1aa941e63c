package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the password hashing strategy of the process. The
// concrete implementation is chosen once at startup by configuration, never
// per call site.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) error
}

var ErrMismatchedPassword = errors.New("password does not match")

// NewPasswordHasher returns the hasher named by strategy ("bcrypt" or
// "argon2id"). An unknown name is a configuration error.
func NewPasswordHasher(strategy string) (PasswordHasher, error) {
	switch strategy {
	case "", "bcrypt":
		return bcryptHasher{cost: bcrypt.DefaultCost}, nil
	case "argon2id":
		return argon2Hasher{time: 1, memory: 64 * 1024, threads: 4, keyLen: 32}, nil
	}

	return nil, fmt.Errorf("unknown password hasher %q", strategy)
}

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (h bcryptHasher) Compare(hashed, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatchedPassword
	}

	return err
}

type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

func (h argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h argon2Hasher) Compare(hashed, password string) error {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return fmt.Errorf("invalid argon2id hash")
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return err
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return err
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, computed) != 1 {
		return ErrMismatchedPassword
	}

	return nil
}
