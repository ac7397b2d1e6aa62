package sheet

import (
	"fmt"
	"strings"
)

// Column positions (0-based) of the engagement sheet.
const (
	ColDate        = 0
	ColCompany     = 1
	ColWebsite     = 4
	ColAudioRef    = 5
	ColAudioLink   = 6
	ColWebsiteLink = 7
	ColStatus      = 8
)

const StatusDone = "Done"

// FirstDataRow is the sheet row after the header.
const FirstDataRow = 2

type Row struct {
	Number   int
	Date     string
	Company  string
	Website  string
	AudioRef string
	Status   string
}

// ParseRow reads a row of cells. Short rows yield empty fields.
func ParseRow(number int, cells []string) Row {
	get := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	return Row{
		Number:   number,
		Date:     get(ColDate),
		Company:  get(ColCompany),
		Website:  get(ColWebsite),
		AudioRef: get(ColAudioRef),
		Status:   get(ColStatus),
	}
}

func (r Row) Done() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), StatusDone)
}

// Hyperlink builds a HYPERLINK formula; quotes are doubled per sheet syntax.
func Hyperlink(url, name string) string {
	esc := func(s string) string { return strings.ReplaceAll(s, `"`, `""`) }
	return fmt.Sprintf(`=HYPERLINK("%s", "%s")`, esc(url), esc(name))
}

// ColumnName converts a 0-based column index to letters (0 -> A, 26 -> AA).
func ColumnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

// A1 returns the A1 reference of a cell on tab.
func A1(tab string, rowNumber, col int) string {
	return fmt.Sprintf("%s!%s%d", quoteTab(tab), ColumnName(col), rowNumber)
}

func quoteTab(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}
