package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("admin@example.com\n"))

	got, err := promptLine(reader, "Username", &out)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got)
	assert.Equal(t, "Username: ", out.String())
}

func TestPromptLinePartialLineBeforeEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := promptLine(reader, "Username", &out)
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}

func TestPromptPasswordUsesSeam(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("hunter2"), nil
	}

	var out bytes.Buffer
	pw, err := promptPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), pw)
	assert.Contains(t, out.String(), "Password: ")
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	assert.Equal(t, make([]byte, 6), b)
}

func TestParseFieldArgs(t *testing.T) {
	updates, err := parseFieldArgs([]string{`title="Senior Go developer"`, "active=false", "hoursPerWeek=40"})
	require.NoError(t, err)
	assert.Equal(t, "Senior Go developer", updates["title"])
	assert.Equal(t, false, updates["active"])
	assert.Equal(t, 40, updates["hoursPerWeek"])

	_, err = parseFieldArgs([]string{"notakeyvalue"})
	require.Error(t, err)
}
