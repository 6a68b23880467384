package java

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/matzehuels/licensefinder/pkg/errors"
)

func TestReadPOM(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, pomFile), `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.example</groupId>
  <artifactId>my-app</artifactId>
  <version>1.0.0</version>
  <name>My App</name>

  <modules>
    <module>core</module>
    <module>web</module>
  </modules>

  <dependencies>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13</version>
      <scope>test</scope>
    </dependency>
  </dependencies>
</project>`)

	pom, err := ReadPOM(dir)
	if err != nil {
		t.Fatalf("ReadPOM() error = %v", err)
	}
	if pom.GroupID != "com.example" || pom.ArtifactID != "my-app" || pom.Version != "1.0.0" {
		t.Errorf("coordinates = %s:%s:%s", pom.GroupID, pom.ArtifactID, pom.Version)
	}
	if len(pom.Modules) != 2 || pom.Modules[0] != "core" || pom.Modules[1] != "web" {
		t.Errorf("Modules = %v, want [core web]", pom.Modules)
	}
	if pom.Parent != nil {
		t.Errorf("Parent = %+v, want nil", pom.Parent)
	}
}

func TestReadPOM_Missing(t *testing.T) {
	_, err := ReadPOM(t.TempDir())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestReadPOM_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, pomFile), "<project><groupId>")

	_, err := ReadPOM(dir)
	var parseErr *errors.ParseError
	if !stderrors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *errors.ParseError", err)
	}
	if parseErr.Source != filepath.Join(dir, pomFile) {
		t.Errorf("Source = %q", parseErr.Source)
	}
}

func TestPOM_Coordinate(t *testing.T) {
	tests := []struct {
		name string
		pom  POM
		want string
	}{
		{"own group", POM{GroupID: "com.example", ArtifactID: "app"}, "com.example:app"},
		{"inherited group", POM{ArtifactID: "core", Parent: &pomParent{GroupID: "com.example"}}, "com.example:core"},
		{"own group wins", POM{GroupID: "org.other", ArtifactID: "core", Parent: &pomParent{GroupID: "com.example"}}, "org.other:core"},
		{"no group", POM{ArtifactID: "lonely"}, "lonely"},
		{"whitespace", POM{GroupID: " com.example\n", ArtifactID: "\tapp "}, "com.example:app"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pom.Coordinate(); got != tt.want {
				t.Errorf("Coordinate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPOM_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		pom  POM
		want string
	}{
		{"name", POM{Name: "My App", GroupID: "g", ArtifactID: "a"}, "My App"},
		{"blank name", POM{Name: "  ", GroupID: "g", ArtifactID: "a"}, "g:a"},
		{"property reference", POM{Name: "${project.artifactId}", GroupID: "g", ArtifactID: "a"}, "g:a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pom.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
