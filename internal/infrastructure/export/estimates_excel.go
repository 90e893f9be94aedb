// Package export renders estimates as spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	EstimatesSheet = "Estimates"
	OptionsSheet   = "Options"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var estimateHeaders = []string{
	"Estimate Number", "Status", "Title", "Customer", "Address",
	"Subtotal", "Discount", "Tax", "Total",
	"Valid Until", "Sent At", "Approved At", "Created At",
}

var optionHeaders = []string{
	"Estimate Number", "Option", "Recommended", "Discount Type", "Discount Value",
	"Tax Rate", "Line Items", "Subtotal", "Discount", "Tax", "Total",
}

// WriteEstimates writes a workbook with one row per estimate on the
// Estimates sheet and one row per option on the Options sheet.
func WriteEstimates(w io.Writer, estimates []entities.Estimate) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with Sheet1; rename it rather than leave it empty.
	if err := f.SetSheetName(f.GetSheetName(0), EstimatesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(OptionsSheet); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}

	if err := writeRow(f, EstimatesSheet, 1, toCells(estimateHeaders)); err != nil {
		return err
	}
	if err := writeRow(f, OptionsSheet, 1, toCells(optionHeaders)); err != nil {
		return err
	}

	optRow := 2
	for i, e := range estimates {
		customer, address := "", ""
		if e.Customer != nil {
			customer = e.Customer.Name
		}
		if e.Address != nil {
			address = e.Address.Street
		}
		row := []interface{}{
			e.EstimateNumber, string(e.Status), e.Title, customer, address,
			e.Subtotal.InexactFloat64(), e.DiscountAmount.InexactFloat64(),
			e.TaxAmount.InexactFloat64(), e.Total.InexactFloat64(),
			formatDate(e.ValidUntil), formatDate(e.SentAt), formatDate(e.ApprovedAt),
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writeRow(f, EstimatesSheet, i+2, row); err != nil {
			return err
		}

		for _, o := range e.Options {
			row := []interface{}{
				e.EstimateNumber, o.Name, o.IsRecommended, string(o.DiscountType),
				o.DiscountValue.InexactFloat64(), o.TaxRate.InexactFloat64(), len(o.LineItems),
				o.Subtotal.InexactFloat64(), o.DiscountAmount.InexactFloat64(),
				o.TaxAmount.InexactFloat64(), o.Total.InexactFloat64(),
			}
			if err := writeRow(f, OptionsSheet, optRow, row); err != nil {
				return err
			}
			optRow++
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("error writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(headers []string) []interface{} {
	out := make([]interface{}, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
