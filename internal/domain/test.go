package domain

// TestDefinition is a dispatchable external test suite discovered in the
// external-tests directory.
type TestDefinition struct {
	Name string // File name with the extension stripped
	Path string // Full path to the test script
}
