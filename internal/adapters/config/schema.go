package config

// Filename is the optional settings file at the project root.
const Filename = "depbuild.yaml"

// DotenvFilename is the optional environment file at the project root.
const DotenvFilename = ".env"

// Environment variables that override file settings.
const (
	EnvProject   = "DEPBUILD_PROJECT"
	EnvTool      = "DEPBUILD_CMAKE"
	EnvGenerator = "DEPBUILD_GENERATOR"
)

// Depfile represents the structure of the depbuild.yaml settings file.
type Depfile struct {
	Project   string `yaml:"project"`
	CMake     string `yaml:"cmake"`
	Generator string `yaml:"generator"`
}
