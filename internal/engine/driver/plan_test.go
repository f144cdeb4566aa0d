package driver_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/engine/driver"
)

func TestPlan_Invocations(t *testing.T) {
	root := filepath.FromSlash("/src")
	settings := domain.DefaultSettings(root)
	layout := domain.NewLayout(settings)

	dep, err := driver.Lookup("eigen")
	require.NoError(t, err)

	plan := driver.Plan(layout, settings, dep)
	require.Len(t, plan, 3)

	buildDir := filepath.Join(root, "third_party", "build", "eigen")
	prefix := filepath.Join(root, "python", "pymesh", "third_party")

	assert.Equal(t, domain.Invocation{
		Phase: domain.PhaseConfigure,
		Args: []string{
			"cmake",
			filepath.Join(root, "third_party", "eigen"),
			"-DBUILD_SHARED_LIBS=Off",
			"-DCMAKE_POSITION_INDEPENDENT_CODE=On",
			"-DCMAKE_INSTALL_PREFIX=" + prefix,
		},
		Dir: buildDir,
	}, plan[0])
	assert.Equal(t, domain.Invocation{
		Phase: domain.PhaseBuild,
		Args:  []string{"cmake", "--build", buildDir},
		Dir:   buildDir,
	}, plan[1])
	assert.Equal(t, domain.Invocation{
		Phase: domain.PhaseInstall,
		Args:  []string{"cmake", "--build", buildDir, "--target", "install"},
		Dir:   buildDir,
	}, plan[2])
}

func TestPlan_DependencyFlags(t *testing.T) {
	settings := domain.DefaultSettings(filepath.FromSlash("/src"))
	layout := domain.NewLayout(settings)

	tests := []struct {
		name  string
		extra []string
	}{
		{"cgal", []string{"-DWITH_CGAL_ImageIO=Off", "-DWITH_CGAL_Qt5=Off"}},
		{"tbb", []string{"-DTBB_BUILD_SHARED=On", "-DTBB_BUILD_STATIC=Off"}},
		{"json", []string{"-DJSON_BuildTests=Off"}},
		{"cork", nil},
		{"clipper", nil},
		{"mmg", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep, err := driver.Lookup(tt.name)
			require.NoError(t, err)

			configure := driver.Plan(layout, settings, dep)[0].Args
			// tool, source, two common flags, extras, install prefix
			require.Len(t, configure, 5+len(tt.extra))
			assert.Equal(t, tt.extra, nilIfEmpty(configure[4:len(configure)-1]))
		})
	}
}

func TestPlan_Generator(t *testing.T) {
	settings := domain.DefaultSettings(filepath.FromSlash("/src"))
	settings.Tool = "/opt/cmake/bin/cmake"
	settings.Generator = "Ninja Multi-Config"
	layout := domain.NewLayout(settings)

	dep, err := driver.Lookup("draco")
	require.NoError(t, err)

	plan := driver.Plan(layout, settings, dep)
	configure := plan[0].Args

	assert.Equal(t, "/opt/cmake/bin/cmake", configure[0])
	assert.Equal(t, []string{"-G", "Ninja Multi-Config"}, configure[2:4])
	assert.Equal(t, "/opt/cmake/bin/cmake", plan[1].Args[0])
	assert.Equal(t, "/opt/cmake/bin/cmake", plan[2].Args[0])
}

func TestPlan_PathWithSpaces(t *testing.T) {
	root := filepath.FromSlash("/home/me/my mesh project")
	settings := domain.DefaultSettings(root)
	layout := domain.NewLayout(settings)

	dep, err := driver.Lookup("qhull")
	require.NoError(t, err)

	configure := driver.Plan(layout, settings, dep)[0].Args
	assert.Equal(t, filepath.Join(root, "third_party", "qhull"), configure[1])
	assert.Equal(t, "-DCMAKE_INSTALL_PREFIX="+filepath.Join(root, "python", "pymesh", "third_party"), configure[len(configure)-1])
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
