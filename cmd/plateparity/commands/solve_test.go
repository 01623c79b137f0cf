package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDigits(t *testing.T) {
	digits, err := parseDigits("4312")
	require.NoError(t, err)
	require.Equal(t, [4]int{4, 3, 1, 2}, digits)

	digits, err = parseDigits("0009")
	require.NoError(t, err)
	require.Equal(t, [4]int{0, 0, 0, 9}, digits)

	for _, bad := range []string{"", "123", "12345", "12a4", "-123", "12.4", "１２３４"} {
		if _, err := parseDigits(bad); err == nil {
			t.Errorf("parseDigits(%q) succeeded, want error", bad)
		}
	}
}

func TestIsDigitString(t *testing.T) {
	require.True(t, isDigitString("4312"))
	require.True(t, isDigitString("0"))
	require.False(t, isDigitString(""))
	require.False(t, isDigitString("solve"))
	require.False(t, isDigitString("12x4"))
}
