package shopcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"SHOP-001":      "SHOP-001",
		"shop-001":      "SHOP-001",
		"  Shop-001 \t": "SHOP-001",
		"sh op_0!01":    "SHOP001",
		"":              "",
		"!!!":           "",
	}
	for in, want := range cases {
		require.Equal(t, want, Normalize(in), "input %q", in)
	}
	require.Equal(t, "ABCDEFGHIJKLMNOPQRST", Normalize("abcdefghijklmnopqrstuvwxyz"))
}

func TestNormalize_CaseInsensitiveRoundTrip(t *testing.T) {
	t.Parallel()

	canonical := "CITY-GROCERY-7"
	for _, in := range []string{"city-grocery-7", "City-Grocery-7", " CITY-grocery-7 "} {
		require.Equal(t, canonical, Normalize(in))
		require.Equal(t, canonical, Normalize(Normalize(in)))
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := Parse("  ** ")
	require.ErrorIs(t, err, ErrEmpty)

	c, err := Parse("q-" + strings.Repeat("9", 30))
	require.NoError(t, err)
	require.Len(t, c, MaxLen)
}
