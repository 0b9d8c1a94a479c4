package schlemiel

// OuterIters is how many times each variant rebuilds the buffer.
const OuterIters = 10000

// tokens make up one 8-byte round; 128 rounds fill the buffer.
var tokens = [4]string{"Jo", "Pa", "Ge", "Ri"}

const roundLen = 8

// Variant selects one of the two concat strategies.
type Variant int

const (
	Inefficient Variant = iota
	Efficient
)

func (v Variant) String() string {
	if v == Efficient {
		return "efficient"
	}
	return "inefficient"
}

// InefficientConcat rebuilds the buffer iters times appending every token
// with Strncat, so each append rescans the buffer from its start. Total cost
// is quadratic in the buffer length.
func InefficientConcat(buf *Buffer, iters int) {
	for j := 0; j < iters; j++ {
		buf.Reset()
		for i := 0; i < BufLen/roundLen; i++ {
			for _, tok := range tokens {
				buf.Strncat(tok)
			}
		}
	}
}

// EfficientConcat rebuilds the same content, but computes every write target
// as a running offset instead of rescanning. Total cost is linear in the
// buffer length.
func EfficientConcat(buf *Buffer, iters int) {
	for j := 0; j < iters; j++ {
		buf.Reset()
		for off := 0; off < BufLen; off += roundLen {
			for k, tok := range tokens {
				buf.SetAt(off+2*k, tok)
			}
		}
	}
}

// Run executes the variant over buf.
func (v Variant) Run(buf *Buffer, iters int) {
	switch v {
	case Efficient:
		EfficientConcat(buf, iters)
	default:
		InefficientConcat(buf, iters)
	}
}

// TimeVariant runs v bracketed by two clock readings and returns the elapsed
// CPU time.
func TimeVariant(v Variant, buf *Buffer, iters int) TimeSpec {
	start := Now()
	v.Run(buf, iters)
	return Elapsed(start, Now())
}
