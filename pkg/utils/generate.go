package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateOTP returns a uniformly random six-digit code in the range
// 100000-999999, so the code never collapses to fewer digits.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
