// Package java provides license discovery for Maven projects.
//
// # Overview
//
// This package implements [deps.Adapter] for Maven. It runs
// license-maven-plugin against the project and reads the license summary
// the plugin writes for every module:
//
//	mvn org.codehaus.mojo:license-maven-plugin:download-licenses
//	→ target/generated-resources/licenses.xml
//
// # Command Resolution
//
// A project-local Maven wrapper (mvnw, or mvnw.cmd on Windows) is preferred
// over a global mvn. [Maven.PackageManagementCommand] reports the choice
// without running anything.
//
// # Excluded Scopes
//
// Ignored groups are passed to the plugin as excluded scopes, comma-joined
// in insertion order:
//
//	mvn org.codehaus.mojo:license-maven-plugin:download-licenses -Dlicense.excludedScopes=system,test
//
// # Package Names
//
// Packages are named by artifactId. With [deps.Options.IncludeGroups] they
// use Maven coordinates instead: "groupId:artifactId".
//
// # Project Root
//
// [Maven.IsProjectRoot] asks Maven for project.parent; a module with no
// parent is the root. A failing query is an error, not "not a root".
//
// [deps.Adapter]: github.com/matzehuels/licensefinder/pkg/deps.Adapter
// [deps.Options.IncludeGroups]: github.com/matzehuels/licensefinder/pkg/deps.Options
package java
