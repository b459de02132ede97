package mcoro

// Errors unwraps a joined error (as produced by errors.Join) into its
// constituent errors, or returns a single-element slice for a plain error,
// or an empty slice for nil. future.WhenAllSettled joins every operand's
// failure this way, so Errors recovers each of them; future.WhenAll surfaces
// only the first failure, so there is nothing to unpack there.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}
