package processor

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go-healthwatch/types"
)

const ReportsCSVFilename = "community_health_reports.csv"

var reportsCSVHeader = []string{
	"Report ID", "Location", "Date Submitted", "Status", "Submitted By", "Age", "Gender", "Symptoms", "Details",
}

type csvField struct {
	value       string
	alwaysQuote bool
}

// WriteReportsCSV writes the reports as comma separated rows under a header.
// Free-text columns are always quoted; other columns are quoted only when
// they contain a delimiter, a quote or a line break. Symptoms are joined
// with "; " inside their quoted field.
func WriteReportsCSV(w io.Writer, reports []types.Report) error {
	bw := bufio.NewWriter(w)

	header := make([]csvField, len(reportsCSVHeader))
	for i, h := range reportsCSVHeader {
		header[i] = csvField{value: h}
	}
	if err := writeCSVRow(bw, header); err != nil {
		return err
	}

	for _, r := range reports {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		row := []csvField{
			{value: r.ID},
			{value: r.Location, alwaysQuote: true},
			{value: r.Date},
			{value: string(r.Status)},
			{value: r.SubmittedBy, alwaysQuote: true},
			{value: strconv.Itoa(r.Age)},
			{value: string(r.Gender)},
			{value: strings.Join(r.Symptoms, "; "), alwaysQuote: true},
			{value: r.Details, alwaysQuote: true},
		}
		if err := writeCSVRow(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeCSVRow(w *bufio.Writer, fields []csvField) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		v := f.value
		if f.alwaysQuote || strings.ContainsAny(v, ",\"\r\n") {
			v = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		if _, err := w.WriteString(v); err != nil {
			return err
		}
	}
	return nil
}
