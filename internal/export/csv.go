// ABOUTME: CSV serializer for the word frequency table.
// ABOUTME: Always quotes the word column and doubles embedded quotes.

package export

import (
	"strconv"
	"strings"

	"github.com/harper/wordcloud/internal/models"
)

// CSVHeader is the first row of every frequency export.
const CSVHeader = "Word,Count"

// CSV serializes entries in the order given. Rows are separated by "\n" with
// no trailing newline.
func CSV(entries []models.FrequencyEntry) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoData
	}

	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, CSVHeader)
	for _, e := range entries {
		rows = append(rows, quoteField(e.Word)+","+strconv.Itoa(e.Count))
	}
	return strings.Join(rows, "\n"), nil
}

// CSVFile wraps CSV output as a downloadable file.
func CSVFile(entries []models.FrequencyEntry) (File, error) {
	data, err := CSV(entries)
	if err != nil {
		return File{}, err
	}
	return File{Name: CSVFilename, MIMEType: CSVMIMEType, Data: []byte(data)}, nil
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
