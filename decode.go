package rot

// Decode inverts Rotate for the same options: it resolves the effective
// shift and charset, reduces the shift modulo the alphabet length, and
// rotates by the reduced shift's negation. The reduced shift lies in
// [0, length), so negating it cannot overflow even for math.MinInt, and
// its negation is the exact inverse of every per-character rotation.
// For any alphabet with unique characters
//
//	Decode(Encode(text, opts...), opts...) == text
//
// The ROT18 preset re-applies its own transform instead, and ROT47 decodes
// to the same rotation it encodes with, both being self-inverse.
func Decode(text string, opts ...Option) string {
	res := resolve(opts)
	if res.rot18 {
		return rot18(text)
	}
	shift := NormalizeShift(res.shift, alphabetLength(res.charset))
	return rotate(text, -shift, res.charset)
}
