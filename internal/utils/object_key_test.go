package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^[0-9a-z]{11}-\d{13}\.png$`)

func TestGenerateObjectKey(t *testing.T) {
	key := GenerateObjectKey("avatar.png")
	require.Regexp(t, keyPattern, key)
}

func TestGenerateObjectKey_KeepsLastExtension(t *testing.T) {
	key := GenerateObjectKey("archive.tar.gz")
	require.Regexp(t, `\.gz$`, key)
}

func TestGenerateObjectKey_NoExtension(t *testing.T) {
	key := GenerateObjectKey("avatar")
	require.Regexp(t, `^[0-9a-z]{11}-\d{13}$`, key)
}

func TestGenerateObjectKey_Distinct(t *testing.T) {
	a := GenerateObjectKey("avatar.png")
	b := GenerateObjectKey("avatar.png")
	require.NotEqual(t, a, b)
}

func TestFileExtension(t *testing.T) {
	require.Equal(t, "png", FileExtension("a.png"))
	require.Equal(t, "gz", FileExtension("a.tar.gz"))
	require.Equal(t, "", FileExtension("noext"))
	require.Equal(t, "", FileExtension("trailing."))
}
