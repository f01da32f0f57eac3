// Package export renders document lists as spreadsheets.
package export

import (
	"fmt"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const documentsSheet = "Documents"

var documentsHeader = []string{
	"Number", "Type", "Status", "Client", "Issue date", "Due date",
	"Services subtotal", "Goods subtotal", "Subtotal", "Total tax", "Total",
}

// DocumentsXLSX writes one row per document with its rounded totals.
func DocumentsXLSX(docs []domain.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(documentsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for c, v := range documentsHeader {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(documentsSheet, cell, v); err != nil {
			return nil, err
		}
	}

	for r, d := range docs {
		row := r + 2
		values := []any{
			d.Number,
			string(d.Type),
			string(d.Status),
			d.Client.Name,
			dateCell(d.IssueDate),
			dateCell(d.DueDate),
			amount(d.ServicesSubtotal),
			amount(d.GoodsSubtotal),
			amount(d.Subtotal),
			amount(d.TotalTax),
			amount(d.Total),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			if err := f.SetCellValue(documentsSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(documentsSheet, "A", "C", 12)
	_ = f.SetColWidth(documentsSheet, "D", "D", 28)
	_ = f.SetColWidth(documentsSheet, "E", "F", 12)
	_ = f.SetColWidth(documentsSheet, "G", "K", 16)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetCellStyle(documentsSheet, "A1", "K1", headerStyle)
	}
	if len(docs) > 0 {
		moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
		if err == nil {
			last, _ := excelize.CoordinatesToCellName(11, len(docs)+1)
			_ = f.SetCellStyle(documentsSheet, "G2", last, moneyStyle)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
