package excel

// LoaderConfig holds configuration for the spreadsheet loader
type LoaderConfig struct {
	Sheet   string `json:"sheet"`    // empty: first sheet of the workbook
	MaxRows int    `json:"max_rows"` // 0: unlimited
}

// DefaultLoaderConfig returns sensible defaults for uploads
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		MaxRows: 100000,
	}
}
