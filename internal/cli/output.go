package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/licensefinder/pkg/config"
	"github.com/matzehuels/licensefinder/pkg/errors"
	"github.com/matzehuels/licensefinder/pkg/license"
)

// licenseSeparator joins multiple licenses of one package in flat output.
const licenseSeparator = ", "

// writeReport writes results to w in format.
func writeReport(w io.Writer, results []adapterReport, format string) error {
	switch format {
	case config.FormatTable:
		return writeTable(w, results)
	case config.FormatJSON:
		return writeJSON(w, results)
	case config.FormatCSV:
		return writeCSV(w, results)
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown format %q", format)
}

// writeTable renders one table per package manager. Colors follow w, so a
// file receives plain text.
func writeTable(w io.Writer, results []adapterReport) error {
	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle := r.NewStyle().Bold(true).Foreground(colorGray).Padding(0, 1)
	cellStyle := r.NewStyle().Padding(0, 1)
	unknownStyle := cellStyle.Foreground(colorYellow)

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, titleStyle.Render(res.Adapter+" · "+res.Project))

		pkgs := res.Packages
		rows := make([][]string, len(pkgs))
		for j, p := range pkgs {
			rows[j] = []string{p.Name, p.Version, strings.Join(p.LicenseNames(), licenseSeparator)}
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(r.NewStyle().Foreground(colorDim)).
			Headers("Package", "Version", "Licenses").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col == 2 && row < len(pkgs) && pkgs[row].HasUnknownLicense() {
					return unknownStyle
				}
				return cellStyle
			})

		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}
	return nil
}

type jsonPackage struct {
	license.Package
	PackageManager string `json:"package_manager"`
}

func writeJSON(w io.Writer, results []adapterReport) error {
	out := []jsonPackage{}
	for _, res := range results {
		for _, p := range res.Packages {
			out = append(out, jsonPackage{Package: p, PackageManager: res.Adapter})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, results []adapterReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "version", "licenses", "package_manager"}); err != nil {
		return err
	}
	for _, res := range results {
		for _, p := range res.Packages {
			row := []string{p.Name, p.Version, strings.Join(p.LicenseNames(), licenseSeparator), res.Adapter}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
