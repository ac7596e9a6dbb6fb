package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	keyTokenLength = 11
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GenerateObjectKey derives a storage key of the form
// {random-base36-token}-{millisecond-timestamp}.{extension}. Collision
// avoidance is probabilistic only; the token comes from a non-cryptographic
// random source. A filename without a period yields a key with no extension.
func GenerateObjectKey(filename string) string {
	token := make([]byte, keyTokenLength)
	for i := range token {
		token[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}

	key := fmt.Sprintf("%s-%d", token, time.Now().UnixMilli())
	if ext := FileExtension(filename); ext != "" {
		key += "." + ext
	}
	return key
}

// FileExtension returns the suffix after the last period of filename,
// verbatim, or "" when there is no period.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx+1:]
}
