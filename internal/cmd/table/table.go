// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/fatih/color"

	"github.com/quaycode/stockroom/pkg/inventory"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Stock cell colors mirror the storefront views: red for critical
// stock, yellow for low. Sprint functions degrade to plain text when
// color is disabled globally.
var (
	criticalStock = color.New(color.FgRed, color.Bold).SprintFunc()
	lowStock      = color.New(color.FgYellow).SprintFunc()
)

// formatQuantity renders a stock quantity cell, color-coded by level.
func formatQuantity(p inventory.Product) string {
	cell := strconv.Itoa(p.Quantity)
	switch p.StockLevel() {
	case inventory.StockOut, inventory.StockCritical:
		return criticalStock(cell)
	case inventory.StockLow:
		return lowStock(cell)
	default:
		return cell
	}
}

// ProductsToData converts catalog products to table format.
func ProductsToData(products []inventory.Product, wide bool) Data {
	headers := []string{"ID", "Name", "Category", "Quantity", "Price", "Value"}
	if wide {
		headers = append(headers, "Description")
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			orDash(p.Category),
			formatQuantity(p),
			strconv.FormatInt(p.Price, 10),
			strconv.FormatInt(p.Value(), 10),
		}
		if wide {
			row = append(row, orDash(p.Description))
		}
		rows = append(rows, row)
	}

	alignment := []Align{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight}
	if wide {
		alignment = append(alignment, AlignLeft)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// SalesToData converts ledger records to table format.
func SalesToData(records []inventory.SaleRecord) Data {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		kind := "Sale"
		if rec.IsWriteOff() {
			kind = "Write-off: " + rec.Reason
		}
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Timestamp.Format("2006-01-02 15:04"),
			rec.ProductName,
			strconv.Itoa(rec.Quantity),
			strconv.FormatInt(rec.Price, 10),
			strconv.FormatInt(rec.Total(), 10),
			kind,
		})
	}

	return Data{
		Headers: []string{"ID", "Date", "Product", "Quantity", "Price", "Total", "Kind"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft,
		},
	}
}

// LinesToData converts staged cart lines to table format.
func LinesToData(lines []inventory.Line) Data {
	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		rows = append(rows, []string{
			strconv.Itoa(i),
			line.Name,
			strconv.Itoa(line.Quantity),
			strconv.FormatInt(line.UnitPrice, 10),
			strconv.FormatInt(line.Total(), 10),
		})
	}

	return Data{
		Headers: []string{"#", "Product", "Quantity", "Price", "Total"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight,
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
