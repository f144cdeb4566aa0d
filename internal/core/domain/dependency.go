// Package domain holds the core types of the dependency build driver.
package domain

// AllPackages is the package argument that selects the whole catalog.
const AllPackages = "all"

// Dependency describes one third-party library the driver knows how to build.
type Dependency struct {
	// Name identifies the dependency on the command line and names its build directory.
	Name string
	// Required dependencies are never treated as optional when building the whole catalog.
	Required bool
	// SourcePath is the source directory relative to the third_party tree.
	// It equals Name unless the library keeps its CMake project in a nested directory.
	SourcePath string
	// Flags are extra configure flags appended after the common ones.
	Flags []string
}

// Source returns the source path, falling back to the dependency name.
func (d Dependency) Source() string {
	if d.SourcePath == "" {
		return d.Name
	}
	return d.SourcePath
}
