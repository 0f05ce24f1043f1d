package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "full yes uppercase", input: "YES\n", want: true},
		{name: "no with default yes", input: "n\n", def: true, want: false},
		{name: "empty takes default no", input: "\n", want: false},
		{name: "empty takes default yes", input: "\n", def: true, want: true},
		{name: "eof takes default", input: "", def: true, want: true},
		{name: "answer without newline", input: "yes", want: true},
		{name: "retry after invalid answer", input: "maybe\ny\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tt.input), &out).Confirm("Continue?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_Hint(t *testing.T) {
	var out bytes.Buffer
	_, err := New(strings.NewReader("\n"), &out).Confirm("Overwrite?", false)
	require.NoError(t, err)
	assert.Equal(t, "Overwrite? [y/N]: ", out.String())

	out.Reset()
	_, err = New(strings.NewReader("\n"), &out).Confirm("Overwrite?", true)
	require.NoError(t, err)
	assert.Equal(t, "Overwrite? [Y/n]: ", out.String())
}

func TestConfirm_InvalidAnswerReprompts(t *testing.T) {
	var out bytes.Buffer
	_, err := New(strings.NewReader("what\nn\n"), &out).Confirm("Q?", false)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "Q? [y/N]: "))
	assert.Contains(t, out.String(), "Error: invalid input")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty closed") }

func TestConfirm_ReadError(t *testing.T) {
	_, err := New(failingReader{}, &bytes.Buffer{}).Confirm("Q?", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty closed")
}

func TestPrompter_SharesInputAcrossQuestions(t *testing.T) {
	p := New(strings.NewReader("y\nn\n"), &bytes.Buffer{})

	first, err := p.Confirm("First?", false)
	require.NoError(t, err)
	second, err := p.Confirm("Second?", true)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}
