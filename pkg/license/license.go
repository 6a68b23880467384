// Package license defines the package records reported by adapters.
//
// Every adapter, whatever its ecosystem, normalises its tool output into
// [Package] values: a name, a version and the declared [License] entries.
// A package always owns at least one license; when the source declares none
// it carries a single [Unknown] license.
package license

import "strings"

// Unknown is the license name used when a dependency declares none.
const Unknown = "unknown"

// License is a declared license of a package.
type License struct {
	Name string `json:"name"`
}

// Package is a third-party dependency with its declared licenses.
type Package struct {
	Name     string    `json:"name"`
	Version  string    `json:"version"`
	Licenses []License `json:"licenses"`
}

// NewPackage creates a Package with the given license names, in order.
// Blank names are dropped. If no names remain, the package gets a single
// Unknown license.
func NewPackage(name, version string, licenses ...string) Package {
	p := Package{Name: name, Version: version}
	for _, l := range licenses {
		if l = strings.TrimSpace(l); l != "" {
			p.Licenses = append(p.Licenses, License{Name: l})
		}
	}
	if len(p.Licenses) == 0 {
		p.Licenses = []License{{Name: Unknown}}
	}
	return p
}

// LicenseNames returns the package's license names in order.
func (p Package) LicenseNames() []string {
	names := make([]string, len(p.Licenses))
	for i, l := range p.Licenses {
		names[i] = l.Name
	}
	return names
}

// HasUnknownLicense reports whether the package declares no license.
func (p Package) HasUnknownLicense() bool {
	return len(p.Licenses) == 1 && p.Licenses[0].Name == Unknown
}
