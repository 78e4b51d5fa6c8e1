package formatting

import (
	"hsmanager/internal/profile"
	pkgstrings "hsmanager/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) *TableFormatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatProfiles renders one row per profile.
func (f *TableFormatter) FormatProfiles(profiles []profile.Profile) (string, error) {
	if len(profiles) == 0 {
		return f.colorize(text.FgYellow, "No server profiles found."), nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{
		f.colorize(text.FgHiCyan, "NAME"),
		f.colorize(text.FgHiCyan, "VERSION"),
		f.colorize(text.FgHiCyan, "PATH"),
		f.colorize(text.FgHiCyan, "ARGS"),
	})
	for _, p := range profiles {
		t.AppendRow(table.Row{
			p.Name,
			p.Version,
			pkgstrings.TruncateCell(p.Path, pkgstrings.DefaultCellMaxLen),
			pkgstrings.TruncateCell(p.Args, pkgstrings.DefaultCellMaxLen),
		})
	}
	t.AppendFooter(table.Row{"", "", "TOTAL", len(profiles)})

	return t.Render(), nil
}

// FormatProfile renders p as key/value rows.
func (f *TableFormatter) FormatProfile(p profile.Profile) (string, error) {
	t := f.createTable()
	t.AppendHeader(table.Row{
		f.colorize(text.FgHiCyan, "FIELD"),
		f.colorize(text.FgHiCyan, "VALUE"),
	})
	t.AppendRows([]table.Row{
		{"name", p.Name},
		{"version", p.Version},
		{"path", p.Path},
		{"args", p.Args},
	})

	return t.Render(), nil
}

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) colorize(color text.Color, s string) string {
	if !f.options.Color {
		return s
	}
	return color.Sprint(s)
}
