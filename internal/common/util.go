package common

// WipeByteArray zeroes b in place. Nil is allowed.
func WipeByteArray(b []byte) {
	clear(b)
}
