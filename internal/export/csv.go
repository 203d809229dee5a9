// Package export renders the transaction list as a CSV document.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dubemjesse/Coinflow/internal/core"
)

var header = []string{"id", "title", "amount", "category", "date", "time"}

// WriteCSV writes the records as CSV in the order given (store order, not
// sorted). Every field is quoted and embedded quotes are doubled per the
// standard escaping rule; encoding/csv is not used because it only quotes
// fields that need it, and the exported format quotes unconditionally.
func WriteCSV(w io.Writer, records []core.Transaction) error {
	if err := writeRow(w, header); err != nil {
		return err
	}
	for _, tx := range records {
		row := []string{
			strconv.FormatInt(tx.ID, 10),
			tx.Title,
			strconv.FormatInt(int64(tx.Amount), 10),
			string(tx.Category),
			tx.Date,
			tx.Time,
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if _, err := fmt.Fprintln(w, strings.Join(quoted, ",")); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Filename is the suggested download name, embedding the export date.
func Filename(now time.Time) string {
	return fmt.Sprintf("coinflow-transactions-%s.csv", now.Format(core.DateLayout))
}
