package schlemiel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElapsedBorrow(t *testing.T) {
	got := Elapsed(TimeSpec{Sec: 10, Nsec: 900000000}, TimeSpec{Sec: 11, Nsec: 100000000})
	require.Equal(t, TimeSpec{Sec: 0, Nsec: 200000000}, got)
}

func TestElapsedNoBorrow(t *testing.T) {
	got := Elapsed(TimeSpec{Sec: 5, Nsec: 100}, TimeSpec{Sec: 5, Nsec: 200})
	require.Equal(t, TimeSpec{Sec: 0, Nsec: 100}, got)
}

func TestElapsedNormalized(t *testing.T) {
	pairs := []struct{ start, end TimeSpec }{
		{TimeSpec{Sec: 0, Nsec: 0}, TimeSpec{Sec: 0, Nsec: 0}},
		{TimeSpec{Sec: 0, Nsec: 999999999}, TimeSpec{Sec: 1, Nsec: 0}},
		{TimeSpec{Sec: 3, Nsec: 1}, TimeSpec{Sec: 7, Nsec: 999999999}},
		{TimeSpec{Sec: 2, Nsec: 500000000}, TimeSpec{Sec: 4, Nsec: 250000000}},
	}
	for _, p := range pairs {
		got := Elapsed(p.start, p.end)
		require.GreaterOrEqual(t, got.Sec, int64(0))
		require.GreaterOrEqual(t, got.Nsec, int64(0))
		require.Less(t, got.Nsec, int64(1000000000))
	}
}

func TestTimeSpecString(t *testing.T) {
	require.Equal(t, "1s 234ms 567890ns", TimeSpec{Sec: 1, Nsec: 234567890}.String())
	require.Equal(t, "0s 0ms 100ns", TimeSpec{Sec: 0, Nsec: 100}.String())
}

func TestTimeSpecNanos(t *testing.T) {
	require.Equal(t, int64(1000000005), TimeSpec{Sec: 1, Nsec: 5}.Nanos())
}

func TestNowNsecRange(t *testing.T) {
	ts := Now()
	require.GreaterOrEqual(t, ts.Nsec, int64(0))
	require.Less(t, ts.Nsec, int64(1000000000))
}
