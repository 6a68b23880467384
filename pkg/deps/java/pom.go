package java

import (
	"encoding/xml"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/licensefinder/pkg/errors"
)

const pomFile = "pom.xml"

// POM holds the identifying parts of a pom.xml.
type POM struct {
	GroupID    string     `xml:"groupId"`
	ArtifactID string     `xml:"artifactId"`
	Version    string     `xml:"version"`
	Name       string     `xml:"name"`
	Parent     *pomParent `xml:"parent"`
	Modules    []string   `xml:"modules>module"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// ReadPOM parses the pom.xml in dir.
func ReadPOM(dir string) (*POM, error) {
	path := filepath.Join(dir, pomFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}

	var pom POM
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, &errors.ParseError{Source: path, Cause: err}
	}
	return &pom, nil
}

// Coordinate returns "groupId:artifactId", inheriting the groupId from the
// parent when the module does not declare its own.
func (p *POM) Coordinate() string {
	group := strings.TrimSpace(p.GroupID)
	if group == "" && p.Parent != nil {
		group = strings.TrimSpace(p.Parent.GroupID)
	}
	artifact := strings.TrimSpace(p.ArtifactID)
	if group == "" {
		return artifact
	}
	return group + ":" + artifact
}

// DisplayName returns the project's <name>, falling back to its coordinate.
func (p *POM) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" && !strings.Contains(name, "${") {
		return name
	}
	return p.Coordinate()
}

// projectPOMs lists pom.xml files under dir in lexical path order, root
// first, skipping the directories reportPaths skips. Paths are relative to
// dir. The root pom.xml is always listed.
func projectPOMs(dir string) []string {
	poms := []string{pomFile}
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != dir && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != pomFile {
			return nil
		}
		if rel, err := filepath.Rel(dir, path); err == nil && rel != pomFile {
			poms = append(poms, rel)
		}
		return nil
	})
	return poms
}
