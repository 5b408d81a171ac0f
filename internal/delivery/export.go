package delivery

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"

	"storefront/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var productExportHeaders = []string{
	"ID", "Title", "Description", "Price", "Category", "Size", "Stock", "Gradient", "Image",
}

// writeProductsXLSX writes one sheet with a header row and a row per product.
func writeProductsXLSX(w io.Writer, products []domain.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("failed to create products sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range productExportHeaders {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(p.ID)
		row.AddCell().SetString(p.Title)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetString(string(p.Category))
		row.AddCell().SetString(string(p.Size))
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.Gradient)
		row.AddCell().SetString(p.Image)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write products workbook: %w", err)
	}
	return nil
}
