package java

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/licensefinder/pkg/errors"
	"github.com/matzehuels/licensefinder/pkg/license"
)

// ParseSummary converts license-maven-plugin summaries into packages,
// preserving document order and then dependency order. A malformed
// document fails the whole call with *errors.ParseError.
func ParseSummary(docs []string, includeGroups bool) ([]license.Package, error) {
	var pkgs []license.Package
	for i, doc := range docs {
		summary, err := decodeSummary(doc)
		if err != nil {
			return nil, &errors.ParseError{Source: fmt.Sprintf("license summary %d", i+1), Cause: err}
		}
		for _, dep := range summary.Dependencies {
			pkgs = append(pkgs, dep.toPackage(includeGroups))
		}
	}
	return pkgs, nil
}

// decodeSummary decodes a whole document. Only whitespace, comments and
// processing instructions may follow the root element.
func decodeSummary(doc string) (licenseSummary, error) {
	var summary licenseSummary
	dec := xml.NewDecoder(strings.NewReader(doc))
	if err := dec.Decode(&summary); err != nil {
		return summary, err
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return summary, nil
		}
		if err != nil {
			return summary, err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return summary, fmt.Errorf("unexpected text after </licenseSummary>")
			}
		default:
			return summary, fmt.Errorf("unexpected content after </licenseSummary>")
		}
	}
}

func (d summaryDependency) toPackage(includeGroups bool) license.Package {
	groupID := strings.TrimSpace(d.GroupID)
	name := strings.TrimSpace(d.ArtifactID)
	if includeGroups && groupID != "" {
		name = groupID + ":" + name
	}

	names := make([]string, len(d.Licenses))
	for i, l := range d.Licenses {
		names[i] = l.Name
	}
	return license.NewPackage(name, strings.TrimSpace(d.Version), names...)
}

type licenseSummary struct {
	XMLName      xml.Name            `xml:"licenseSummary"`
	Dependencies []summaryDependency `xml:"dependencies>dependency"`
}

type summaryDependency struct {
	GroupID    string           `xml:"groupId"`
	ArtifactID string           `xml:"artifactId"`
	Version    string           `xml:"version"`
	Licenses   []summaryLicense `xml:"licenses>license"`
}

type summaryLicense struct {
	Name string `xml:"name"`
	URL  string `xml:"url"`
}
