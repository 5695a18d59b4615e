package excel

// Format identifies the container the uploaded bytes are in
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
)

// rawTable is the header row plus the data rows as cells, before coercion
type rawTable struct {
	headers []string
	rows    [][]cell
}

// cell is one raw cell; text marks cells the spreadsheet stored as strings,
// which are never coerced to numbers.
type cell struct {
	value string
	text  bool
}
