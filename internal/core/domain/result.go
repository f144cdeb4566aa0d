package domain

// Status is the outcome of building a single dependency.
type Status string

const (
	// StatusBuilt indicates configure, build and install all succeeded.
	StatusBuilt Status = "built"
	// StatusSkipped indicates an optional dependency without a CMakeLists.txt.
	StatusSkipped Status = "skipped"
	// StatusFailed indicates one of the steps failed.
	StatusFailed Status = "failed"
)

// Result reports what happened to one dependency.
type Result struct {
	Dependency string
	Status     Status
	BuildDir   string
	CleanedUp  bool
}
