package domain

import "path/filepath"

const (
	// ThirdPartyDirName is the directory holding dependency sources below the project root.
	ThirdPartyDirName = "third_party"
	// BuildDirName is the scratch directory below the third_party tree.
	BuildDirName = "build"
	// DescriptorFileName marks a source directory as configurable.
	DescriptorFileName = "CMakeLists.txt"

	stateDirName   = ".depbuild"
	ledgerFileName = "ledger.json"
)

// Layout resolves every path the driver reads or writes from the project root.
type Layout struct {
	Root    string
	Project string
}

// NewLayout creates a Layout from the resolved settings.
func NewLayout(s *Settings) Layout {
	return Layout{
		Root:    s.Root,
		Project: s.Project,
	}
}

// ThirdPartyDir returns <root>/third_party.
func (l Layout) ThirdPartyDir() string {
	return filepath.Join(l.Root, ThirdPartyDirName)
}

// SourceDir returns the source directory of dep.
func (l Layout) SourceDir(dep Dependency) string {
	return filepath.Join(l.ThirdPartyDir(), filepath.FromSlash(dep.Source()))
}

// DescriptorPath returns the path of the CMakeLists.txt expected in the source directory.
func (l Layout) DescriptorPath(dep Dependency) string {
	return filepath.Join(l.SourceDir(dep), DescriptorFileName)
}

// BuildDir returns the per-dependency scratch build tree.
func (l Layout) BuildDir(dep Dependency) string {
	return filepath.Join(l.ThirdPartyDir(), BuildDirName, dep.Name)
}

// InstallPrefix returns the shared install destination for all dependencies.
func (l Layout) InstallPrefix() string {
	return filepath.Join(l.Root, "python", l.Project, ThirdPartyDirName)
}

// LedgerPath returns the location of the install ledger.
func (l Layout) LedgerPath() string {
	return filepath.Join(l.ThirdPartyDir(), BuildDirName, stateDirName, ledgerFileName)
}
