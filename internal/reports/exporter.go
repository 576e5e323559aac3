package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter renders a Table in one of the supported formats
type ReportExporter interface {
	Export(name, format string, table Table) ([]byte, string, string, error)
}

type reportExporter struct {
	now func() time.Time
}

func NewReportExporter() ReportExporter {
	return &reportExporter{now: time.Now}
}

// Export returns the file body, its download name and its content type.
func (e *reportExporter) Export(name, format string, table Table) ([]byte, string, string, error) {
	timestamp := e.now().Format("20060102_150405")
	base := strings.ReplaceAll(name, "-", "_")

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(table)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("%s_report_%s.csv", base, timestamp), contentTypeCSV, nil

	case FormatExcel:
		data, err := e.exportExcel(table)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("%s_report_%s.xlsx", base, timestamp), contentTypeExcel, nil

	case FormatPDF:
		data, err := e.exportPDF(table)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("%s_report_%s.pdf", base, timestamp), contentTypePDF, nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *reportExporter) exportCSV(table Table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Headers); err != nil {
		return nil, err
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportExcel(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := table.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A1", &table.Headers); err != nil {
		return nil, err
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportPDF(table Table) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, table.Title+" Report")
	pdf.Ln(20)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 9)
	for i, h := range table.Headers {
		pdf.CellFormat(table.Widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range table.Rows {
		for i, v := range row {
			pdf.CellFormat(table.Widths[i], 6, tr(fitCell(pdf, v, table.Widths[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fitCell shortens v until it fits a cell of width w.
func fitCell(pdf *gofpdf.Fpdf, v string, w float64) string {
	const padding = 2
	if pdf.GetStringWidth(v) <= w-padding {
		return v
	}
	r := []rune(v)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > w-padding {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
