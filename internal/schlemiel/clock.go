package schlemiel

import "fmt"

// TimeSpec is a single clock reading split into whole seconds and the
// sub-second remainder in nanoseconds.
type TimeSpec struct {
	Sec  int64
	Nsec int64
}

// Elapsed returns end-start normalized so Nsec stays within [0, 1e9),
// borrowing one second when the raw nanosecond difference is negative.
// end is assumed to be the later reading; the result is meaningless otherwise.
func Elapsed(start, end TimeSpec) TimeSpec {
	if end.Nsec-start.Nsec < 0 {
		return TimeSpec{Sec: end.Sec - start.Sec - 1, Nsec: 1e9 + end.Nsec - start.Nsec}
	}
	return TimeSpec{Sec: end.Sec - start.Sec, Nsec: end.Nsec - start.Nsec}
}

// Nanos flattens the reading to nanoseconds.
func (ts TimeSpec) Nanos() int64 {
	return ts.Sec*1e9 + ts.Nsec
}

func (ts TimeSpec) String() string {
	ms := ts.Nsec / 1e6
	return fmt.Sprintf("%ds %dms %dns", ts.Sec, ms, ts.Nsec-ms*1e6)
}
