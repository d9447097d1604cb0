package limiter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyFor_IgnoresPort(t *testing.T) {
	t.Parallel()

	a := KeyFor("owner", "10.0.0.1:50000")
	b := KeyFor("owner", "10.0.0.1:50001")
	require.Equal(t, a, b)
	require.Equal(t, a, KeyFor("owner", "10.0.0.1"))

	require.NotEqual(t, a.PeerHash, KeyFor("owner", "10.0.0.2:50000").PeerHash)
	require.NotEqual(t, a, KeyFor("other", "10.0.0.1:50000"))
}

func TestKeyFor_IPv6(t *testing.T) {
	t.Parallel()

	require.Equal(t, KeyFor("owner", "[::1]:4000"), KeyFor("owner", "[::1]:4001"))
	require.Equal(t, KeyFor("owner", "[::1]:4000"), KeyFor("owner", "::1"))
}

func TestKeyFor_EmptyPeer(t *testing.T) {
	t.Parallel()

	k := KeyFor("owner", "")
	require.Len(t, k.PeerHash, 32)
	require.Equal(t, "owner", k.Username)
}
