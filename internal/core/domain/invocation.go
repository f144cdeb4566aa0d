package domain

// Phase names one of the three external tool invocations made per dependency.
type Phase string

const (
	// PhaseConfigure generates the build tree.
	PhaseConfigure Phase = "configure"
	// PhaseBuild compiles the build tree.
	PhaseBuild Phase = "build"
	// PhaseInstall builds the install target.
	PhaseInstall Phase = "install"
)

// Invocation is a single external process call.
// Args is the full argv including the executable; it is never split or joined by a shell.
type Invocation struct {
	Phase Phase
	Args  []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}
