package gridcost

// SetMaxLineBytes overrides the row length cap and returns a restore func.
func SetMaxLineBytes(n int) (restore func()) {
	old := maxLineBytes
	maxLineBytes = n
	return func() { maxLineBytes = old }
}
