package schlemiel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrncatAppends(t *testing.T) {
	var buf Buffer
	buf.Strncat("Jo")
	buf.Strncat("Pa")
	require.Equal(t, "JoPa", buf.String())
}

func TestStrncatTruncates(t *testing.T) {
	var buf Buffer
	for i := 0; i < BufLen; i++ {
		buf.Strncat("ab")
	}
	require.Equal(t, BufLen-1, buf.Len())
	// further appends stay truncated at capacity
	buf.Strncat("cd")
	require.Equal(t, BufLen-1, buf.Len())
}

func TestSetAtMatchesStrncat(t *testing.T) {
	var a, b Buffer
	a.Strncat("Jo")
	a.Strncat("Pa")
	b.SetAt(0, "Jo")
	b.SetAt(2, "Pa")
	require.Equal(t, a.String(), b.String())
}

func TestResetEmpties(t *testing.T) {
	var buf Buffer
	buf.Strncat("Jo")
	buf.Reset()
	require.Equal(t, 0, buf.Len())
	require.Equal(t, "", buf.String())
}
