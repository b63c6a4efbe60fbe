package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// Generator produces one-time verification codes.
type Generator interface {
	// Generate returns a new code as a string of decimal digits.
	Generate() (string, error)
}

// Numeric generates uniform random six-digit codes in [100000, 999999].
type Numeric struct{}

// NewNumeric returns a six-digit numeric code generator backed by crypto/rand.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a new six-digit code.
func (*Numeric) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}
