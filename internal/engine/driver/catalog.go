package driver

import (
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Catalog returns the dependencies the driver can build, in build order.
// Every call returns a fresh slice.
func Catalog() []domain.Dependency {
	return []domain.Dependency{
		{Name: "cgal", Flags: []string{"-DWITH_CGAL_ImageIO=Off", "-DWITH_CGAL_Qt5=Off"}},
		{Name: "cork"},
		{Name: "eigen", Required: true},
		{Name: "tetgen"},
		{Name: "triangle"},
		{Name: "qhull"},
		{Name: "clipper", SourcePath: "Clipper/cpp"},
		{Name: "draco"},
		{Name: "tbb", Flags: []string{"-DTBB_BUILD_SHARED=On", "-DTBB_BUILD_STATIC=Off"}},
		{Name: "mmg"},
		{Name: "json", Required: true, Flags: []string{"-DJSON_BuildTests=Off"}},
	}
}

// Names returns the catalog names in build order.
func Names() []string {
	catalog := Catalog()
	names := make([]string, 0, len(catalog))
	for _, dep := range catalog {
		names = append(names, dep.Name)
	}
	return names
}

// Lookup returns the catalog entry called name.
func Lookup(name string) (domain.Dependency, error) {
	for _, dep := range Catalog() {
		if dep.Name == name {
			return dep, nil
		}
	}
	return domain.Dependency{}, zerr.With(zerr.Wrap(domain.ErrUnknownDependency, "lookup failed"), "dependency", name)
}
