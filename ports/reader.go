package ports

import (
	"context"

	"gopaired/domain/ttest"
)

// RecordLoaderPort turns an uploaded file into a record set.
// Malformed input fails with an error matching core.ErrParse.
type RecordLoaderPort interface {
	// Load parses data; filename is a format hint (its extension) and may be empty
	Load(ctx context.Context, filename string, data []byte) (ttest.RecordSet, error)
}
