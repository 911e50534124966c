package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "script", []byte("push 1\npush 2\npush 3\nprint\n"), 0o644))

	testCases := []struct {
		name     string
		args     []string
		stdin    string
		expected string
	}{
		{name: "script file", args: []string{"script"}, expected: "3\n2\n1\n"},
		{name: "stdin", stdin: "push 5\npeek\nsize\n", expected: "5\n1\n"},
		{
			name:     "max items",
			args:     []string{"--max-items", "2", "script"},
			expected: "error: push 3: allocation failed: out of memory: size 3 exceeds limit 2\n2\n1\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cmd := newRootCmd(viper.New(), fs)
			cmd.SetArgs(tc.args)
			cmd.SetIn(strings.NewReader(tc.stdin))
			cmd.SetOut(out)
			cmd.SetErr(&bytes.Buffer{})

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestRootCmdBadScript(t *testing.T) {
	cmd := newRootCmd(viper.New(), afero.NewMemMapFs())
	cmd.SetArgs([]string{"nope"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
