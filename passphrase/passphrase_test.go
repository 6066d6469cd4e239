package passphrase_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakeogh/zfstool/passphrase"
)

func promptWithInput(t *testing.T, input string) ([]byte, error) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	_, err = w.WriteString(input)
	require.NoError(t, err)
	w.Close()
	prompter := &passphrase.Prompter{In: r, Out: io.Discard}
	return prompter.Prompt("tank")
}

func TestPromptNonTerminal(t *testing.T) {
	tests := []struct {
		desc     string
		input    string
		expected string
		err      error
	}{
		{desc: "line", input: "correct horse\nignored\n", expected: "correct horse"},
		{desc: "no newline", input: "battery staple", expected: "battery staple"},
		{desc: "crlf", input: "battery staple\r\n", expected: "battery staple"},
		{desc: "empty", input: "\n", err: passphrase.ErrEmpty},
		{desc: "too short", input: "short\n", err: passphrase.ErrTooShort},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			result, err := promptWithInput(t, test.input)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, string(result))
		})
	}
}
