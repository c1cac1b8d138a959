package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	// Ambiguous characters (0/O, 1/l/I) are left out.
	upperAlphabet  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet  = "abcdefghijkmnopqrstuvwxyz"
	digitAlphabet  = "23456789"
	secretAlphabet = upperAlphabet + lowerAlphabet + digitAlphabet + "-_"

	MinTemporaryPasswordLength = 12
	MinSecretKeyLength         = 32
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a uniformly distributed string drawn from alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	value := make([]byte, length)
	for index := range value {
		position, err := randomIndex(len(alphabet))
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position]
	}
	return string(value), nil
}

// TemporaryPassword returns a password containing at least one upper case
// letter, one lower case letter and one digit.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}

	required := make([]byte, 0, 3)
	for _, alphabet := range []string{upperAlphabet, lowerAlphabet, digitAlphabet} {
		char, err := RandomString(1, alphabet)
		if err != nil {
			return "", err
		}
		required = append(required, char[0])
	}

	rest, err := RandomString(length-len(required), upperAlphabet+lowerAlphabet+digitAlphabet)
	if err != nil {
		return "", err
	}

	password := []byte(rest)
	for _, char := range required {
		position, err := randomIndex(len(password) + 1)
		if err != nil {
			return "", err
		}
		password = append(password[:position], append([]byte{char}, password[position:]...)...)
	}
	return string(password), nil
}

// SecretKey returns a key suitable for signing auth tokens.
func SecretKey(length int) (string, error) {
	if length < MinSecretKeyLength {
		length = MinSecretKeyLength
	}
	return RandomString(length, secretAlphabet)
}

func ContainsOnly(value string, alphabet string) bool {
	for _, char := range value {
		if !strings.ContainsRune(alphabet, char) {
			return false
		}
	}
	return true
}

func randomIndex(limit int) (int, error) {
	position, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		return 0, err
	}
	return int(position.Int64()), nil
}
