package rot

// Encode rotates text forward. Encoding and rotating are the same
// operation; Encode exists as the counterpart to Decode.
func Encode(text string, opts ...Option) string {
	return Rotate(text, opts...)
}
