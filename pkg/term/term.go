package term

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

func GetWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	return width, err
}

// RowObject is anything that can be shown as one row of a table.
type RowObject interface {
	GetFields() map[string]any
}

func RenderTable[T RowObject](titles []string, list []T) string {
	if len(list) == 0 {
		return "<empty list>"
	}

	t := table.NewWriter()
	titleRow := make(table.Row, 0, len(titles))
	for _, title := range titles {
		titleRow = append(titleRow, title)
	}
	t.AppendHeader(titleRow)

	for _, item := range list {
		fields := item.GetFields()
		row := make(table.Row, 0, len(titles))
		for _, title := range titles {
			row = append(row, fields[title])
		}
		t.AppendRow(row)
	}

	width, err := GetWidth()
	if err == nil && width > 0 {
		t.SetAllowedRowLength(width)
	}

	return t.Render()
}
