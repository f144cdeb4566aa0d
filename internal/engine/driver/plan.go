package driver

import "go.trai.ch/depbuild/internal/core/domain"

// commonFlags are passed to every configure invocation before the dependency's own flags.
var commonFlags = []string{
	"-DBUILD_SHARED_LIBS=Off",
	"-DCMAKE_POSITION_INDEPENDENT_CODE=On",
}

// Plan returns the configure, build and install invocations for dep, in order.
func Plan(layout domain.Layout, settings *domain.Settings, dep domain.Dependency) []domain.Invocation {
	buildDir := layout.BuildDir(dep)

	configure := []string{settings.Tool, layout.SourceDir(dep)}
	if settings.Generator != "" {
		configure = append(configure, "-G", settings.Generator)
	}
	configure = append(configure, commonFlags...)
	configure = append(configure, dep.Flags...)
	configure = append(configure, "-DCMAKE_INSTALL_PREFIX="+layout.InstallPrefix())

	return []domain.Invocation{
		{Phase: domain.PhaseConfigure, Args: configure, Dir: buildDir},
		{Phase: domain.PhaseBuild, Args: []string{settings.Tool, "--build", buildDir}, Dir: buildDir},
		{Phase: domain.PhaseInstall, Args: []string{settings.Tool, "--build", buildDir, "--target", "install"}, Dir: buildDir},
	}
}
