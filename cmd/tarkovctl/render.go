package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	jsoniter "github.com/json-iterator/go"

	"tarkov_market/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var errPanelFailed = errors.New("panel failed")

//nolint:gochecknoglobals
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

type column[R any] struct {
	title string
	cell  func(R) string
}

// printPanel печатает панель таблицей или JSON. Notice превращается в ошибку,
// чтобы код выхода был ненулевым.
func printPanel[R any](w, errW io.Writer, asJSON bool, panel rest.Panel[R], columns []column[R]) error {
	if asJSON {
		if err := json.NewEncoder(w).Encode(panel); err != nil {
			return fmt.Errorf("json.Encode: %w", err)
		}
	} else {
		renderPanel(w, errW, panel, columns)
	}

	if panel.Notice != nil {
		return fmt.Errorf("%w: %s: %s", errPanelFailed, panel.Notice.Code, panel.Notice.Message)
	}

	return nil
}

func renderPanel[R any](w, errW io.Writer, panel rest.Panel[R], columns []column[R]) {
	if panel.Notice != nil {
		fmt.Fprintln(errW, noticeStyle.Render(panel.Notice.Message))

		return
	}

	if len(panel.Rows) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("no rows"))

		return
	}

	fmt.Fprintln(w, renderTable(panel.Rows, columns))
}

func renderTable[R any](rows []R, columns []column[R]) string {
	headers := make([]string, 0, len(columns))
	for _, c := range columns {
		headers = append(headers, c.title)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	for _, r := range rows {
		cells := make([]string, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, c.cell(r))
		}

		t.Row(cells...)
	}

	return t.Render()
}
