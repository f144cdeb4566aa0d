package domain

const (
	// DefaultProject is the package directory that receives installed artifacts.
	DefaultProject = "pymesh"
	// DefaultTool is the build tool executable.
	DefaultTool = "cmake"
)

// Settings are the resolved project settings for a run.
type Settings struct {
	// Root is the absolute project root.
	Root string
	// Project names the python/<project> package receiving the installs.
	Project string
	// Tool is the build tool executable, looked up in PATH unless absolute.
	Tool string
	// Generator is passed as -G to configure when set.
	Generator string
}

// DefaultSettings returns the settings used when nothing overrides them.
func DefaultSettings(root string) *Settings {
	return &Settings{
		Root:    root,
		Project: DefaultProject,
		Tool:    DefaultTool,
	}
}
