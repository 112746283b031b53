package must

// Get returns v, panicking if err is not nil. It is meant for compositions
// that are known to be valid, where an error would be a bug.
func Get[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
