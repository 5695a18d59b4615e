package excel

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gopaired/domain/core"
	"gopaired/domain/ttest"
	"gopaired/internal"
	"gopaired/ports"

	"github.com/xuri/excelize/v2"
)

var zipMagic = []byte("PK\x03\x04")

// Loader reads Excel and CSV uploads into record sets
type Loader struct {
	config LoaderConfig
	logger *internal.Logger
}

var _ ports.RecordLoaderPort = (*Loader)(nil)

// NewLoader creates a loader with the given configuration
func NewLoader(config LoaderConfig, logger *internal.Logger) *Loader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Loader{config: config, logger: logger}
}

// DetectFormat picks the format from the file extension, sniffing the content
// when there is none.
func DetectFormat(filename string, data []byte) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case "":
		if bytes.HasPrefix(data, zipMagic) {
			return FormatXLSX, nil
		}
		return FormatCSV, nil
	default:
		return "", core.NewParseError(ext, fmt.Errorf("unsupported file type, upload .xlsx or .csv"))
	}
}

// Load parses the uploaded bytes into a record set
func (l *Loader) Load(ctx context.Context, filename string, data []byte) (ttest.RecordSet, error) {
	if err := ctx.Err(); err != nil {
		return ttest.RecordSet{}, err
	}

	format, err := DetectFormat(filename, data)
	if err != nil {
		return ttest.RecordSet{}, err
	}
	l.logger.Debug("[Loader] Parsing %q as %s (%d bytes)", filename, format, len(data))

	var table *rawTable
	switch format {
	case FormatXLSX:
		table, err = l.readExcel(data)
	case FormatTSV:
		table, err = l.readDelimited(data, '\t', format)
	default:
		table, err = l.readDelimited(data, ',', format)
	}
	if err != nil {
		return ttest.RecordSet{}, err
	}

	set, err := l.buildRecordSet(table, format)
	if err != nil {
		return ttest.RecordSet{}, err
	}
	l.logger.Debug("[Loader] %s parsed (%d columns, %d rows)", format, len(set.Columns), set.Len())
	return set, nil
}

// readExcel reads the configured sheet, keeping excelize's cell types as hints
func (l *Loader) readExcel(data []byte) (*rawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, core.NewParseError(string(FormatXLSX), err)
	}
	defer f.Close()

	sheet := l.config.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, core.NewParseError(string(FormatXLSX), fmt.Errorf("workbook has no sheets"))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, core.NewParseError(string(FormatXLSX), fmt.Errorf("failed to read sheet %q: %w", sheet, err))
	}
	if len(rows) == 0 {
		return nil, core.NewParseError(string(FormatXLSX), fmt.Errorf("sheet %q has no header row", sheet))
	}

	table := &rawTable{headers: rows[0]}
	for r := 1; r < len(rows); r++ {
		cells := make([]cell, len(rows[r]))
		for c, value := range rows[r] {
			cells[c] = cell{value: value}
			if value == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			cellType, err := f.GetCellType(sheet, ref)
			if err != nil {
				continue
			}
			switch cellType {
			case excelize.CellTypeInlineString, excelize.CellTypeSharedString, excelize.CellTypeBool:
				cells[c].text = true
			}
		}
		table.rows = append(table.rows, cells)
	}
	return table, nil
}

// readDelimited reads comma or tab separated text
func (l *Loader) readDelimited(data []byte, comma rune, format Format) (*rawTable, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewParseError(string(format), err)
	}
	if len(rows) == 0 {
		return nil, core.NewParseError(string(format), fmt.Errorf("file has no header row"))
	}

	table := &rawTable{headers: rows[0]}
	for _, row := range rows[1:] {
		cells := make([]cell, len(row))
		for c, value := range row {
			cells[c] = cell{value: value}
		}
		table.rows = append(table.rows, cells)
	}
	return table, nil
}

// buildRecordSet applies headers and coerces cells into scalar values
func (l *Loader) buildRecordSet(table *rawTable, format Format) (ttest.RecordSet, error) {
	headers := make([]string, len(table.headers))
	seen := make(map[string]bool, len(table.headers))
	for i, header := range table.headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column %d", i+1)
		}
		if seen[header] {
			return ttest.RecordSet{}, core.NewParseError(string(format), fmt.Errorf("duplicate column header %q", header))
		}
		seen[header] = true
		headers[i] = header
	}

	set := ttest.RecordSet{Columns: headers}
	for _, row := range table.rows {
		if isBlankRow(row) {
			continue
		}
		if l.config.MaxRows > 0 && set.Len() >= l.config.MaxRows {
			return ttest.RecordSet{}, core.NewParseError(string(format), fmt.Errorf("file has more than %d data rows", l.config.MaxRows))
		}
		record := make(ttest.Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = coerceCell(row[i])
			} else {
				record[header] = nil
			}
		}
		set.Rows = append(set.Rows, record)
	}
	return set, nil
}

// coerceCell converts a raw cell to float64, string or nil
func coerceCell(c cell) interface{} {
	value := strings.TrimSpace(c.value)
	if value == "" {
		return nil
	}
	if c.text {
		return value
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return value
}

func isBlankRow(row []cell) bool {
	for _, c := range row {
		if strings.TrimSpace(c.value) != "" {
			return false
		}
	}
	return true
}
