package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// GenerateOTP returns a random 6-digit numeric code
func GenerateOTP() string {
	var b [4]byte
	rand.Read(b[:])
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(b[:])%1000000)
}
