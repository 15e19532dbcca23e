package prompt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/felixgeelhaar/jetup/internal/adapters/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm_Answers(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input string
		want  bool
	}{
		"y":          {"y\n", true},
		"yes":        {"yes\n", true},
		"uppercase":  {"YES\n", true},
		"whitespace": {"  y  \n", true},
		"n":          {"n\n", false},
		"empty":      {"\n", false},
		"garbage":    {"maybe\n", false},
		"eof":        {"", false},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			c := prompt.NewTerminalConfirmer(
				prompt.WithInput(strings.NewReader(tc.input)),
				prompt.WithOutput(&out),
			)

			got, err := c.Confirm(context.Background(), "Reboot now?")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Reboot now? [y/N]:")
		})
	}
}

func TestConfirm_AutoYes(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := prompt.NewTerminalConfirmer(
		prompt.WithInput(strings.NewReader("")),
		prompt.WithOutput(&out),
		prompt.WithAutoYes(true),
	)

	got, err := c.Confirm(context.Background(), "Reboot now?")
	require.NoError(t, err)
	assert.True(t, got)
	assert.Empty(t, out.String(), "auto-yes should not print a prompt")
}
