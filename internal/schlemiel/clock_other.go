//go:build !linux
// +build !linux

package schlemiel

import "time"

// Now falls back to wall time where the process CPU clock isn't exposed, so
// readings include time spent off-CPU.
func Now() TimeSpec {
	t := time.Now()
	return TimeSpec{Sec: t.Unix(), Nsec: int64(t.Nanosecond())}
}
