// Package cmdutil provides shared helpers for stockroom commands.
package cmdutil

import (
	"io"
	"strconv"

	"github.com/quaycode/stockroom/internal/cmd/output"
	"github.com/quaycode/stockroom/internal/cmd/table"
	"github.com/quaycode/stockroom/pkg/errors"
)

// ParseID parses a positional product or record identifier.
func ParseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.NewValidationError("id", arg, "must be a positive integer")
	}
	return id, nil
}

// ParseQuantity parses a positional quantity argument.
func ParseQuantity(arg string) (int, error) {
	qty, err := strconv.Atoi(arg)
	if err != nil || qty < 1 {
		return 0, errors.NewValidationError("quantity", arg, "must be a positive integer")
	}
	return qty, nil
}

// Render writes data to w in the requested format. Table formats use
// the result of toTable; structured formats (json, yaml) marshal raw.
func Render(w io.Writer, explicitFormat string, raw any, toTable func(wide bool) table.Data) error {
	format := output.DetectFormat(explicitFormat)
	formatter := output.NewFormatter(format)

	switch format {
	case output.FormatTable, output.FormatWide:
		return formatter.Format(w, toTable(format == output.FormatWide))
	default:
		return formatter.Format(w, raw)
	}
}
