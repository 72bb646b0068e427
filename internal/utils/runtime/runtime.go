package runtime

// Must panics if err is not nil. Only for use during startup.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
