package prompt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/prompt"
)

func TestChoose(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    int
		expectedErr errors.Code
		outContains []string
	}{
		{
			name:        "first option",
			input:       "1\n",
			expected:    0,
			outContains: []string{"Pick one", "  1) Attack", "  2) Swap"},
		},
		{
			name:        "re-asks on garbage and out of range",
			input:       "abc\n0\n3\n 2 \n",
			expected:    1,
			outContains: []string{"Please enter a number between 1 and 2."},
		},
		{
			name:        "eof cancels",
			input:       "",
			expectedErr: errors.CodeCanceled,
		},
		{
			name:        "eof after invalid input cancels",
			input:       "9\n",
			expectedErr: errors.CodeCanceled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			term := prompt.NewTerminal(strings.NewReader(tc.input), &out)

			got, err := term.Choose(context.Background(), "Pick one", []string{"Attack", "Swap"})
			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectedErr, errors.GetCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			for _, s := range tc.outContains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestChooseHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	term := prompt.NewTerminal(strings.NewReader("1\n"), &bytes.Buffer{})
	_, err := term.Choose(ctx, "Pick one", []string{"Attack"})
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

func TestChooseRequiresOptions(t *testing.T) {
	term := prompt.NewTerminal(strings.NewReader("1\n"), &bytes.Buffer{})
	_, err := term.Choose(context.Background(), "Pick one", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestConfirm(t *testing.T) {
	term := prompt.NewTerminal(strings.NewReader("y\nno\nYES\n"), &bytes.Buffer{})
	ctx := context.Background()

	for _, expected := range []bool{true, false, true} {
		got, err := term.Confirm(ctx, "Play again?")
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	_, err := term.Confirm(ctx, "Play again?")
	assert.True(t, errors.IsCanceled(err))
}
