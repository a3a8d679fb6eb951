package table

import (
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/wisesaying/wisesaying/wisesaying/say"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	page      say.Page
	withColor bool
}

// NewPresenter is a *Presenter constructor
func NewPresenter(page say.Page) *Presenter {
	return &Presenter{
		page:      page,
		withColor: supportsColor(),
	}
}

// Present renders the page as a borderless table followed by a page footer
func (p *Presenter) Present(output io.Writer) error {
	rows := getRows(p.page)

	if len(rows) == 0 {
		_, err := io.WriteString(output, "No sayings found\n")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"ID", "Author", "Content"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	if p.withColor {
		for _, row := range rows {
			table.Rich(row, []tablewriter.Colors{{}, {tablewriter.Normal, tablewriter.FgCyanColor}, {}})
		}
	} else {
		table.AppendBulk(rows)
	}

	table.Render()

	_, err := io.WriteString(output, footer(p.page))
	return err
}

func getRows(page say.Page) [][]string {
	rows := make([][]string, 0, len(page.Content))
	for _, s := range page.Content {
		rows = append(rows, []string{strconv.Itoa(s.ID), s.Author, s.Content})
	}
	return rows
}

func footer(page say.Page) string {
	return "\npage " + strconv.Itoa(page.PageNo) + " of " + strconv.Itoa(page.TotalPages()) +
		" (" + strconv.Itoa(page.TotalCount) + " total)\n"
}

func supportsColor() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
