package pipeline

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTable returns a bordered table writer in the classic ASCII style:
//
//	+------+------+
//	| Name | Year |
//	+------+------+
//	| Go   | 2009 |
//	+------+------+
//
// Headers keep their case and every column is left aligned, numbers included.
func newTable(header ...string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.Style().Format.Header = text.FormatDefault

	row := make(table.Row, len(header))
	configs := make([]table.ColumnConfig, len(header))
	for i, h := range header {
		row[i] = h
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		}
	}
	t.AppendHeader(row)
	t.SetColumnConfigs(configs)

	return t
}

func writeTable(w io.Writer, t table.Writer) error {
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
