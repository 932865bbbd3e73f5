package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nexonbooks/docintake/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	logger    *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, customers repository.CustomerRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, customers: customers, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the given workspace and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices for the workspace.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, workspaceID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	invs, err := s.invoices.ListByPeriod(ctx, workspaceID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Invoice Number",
		"Counterparty",
		"Type",
		"Amount Excl. VAT",
		"VAT Rate",
		"VAT Amount",
		"Amount Incl. VAT",
		"File Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	// Customer lookups are cached per export; workspaces reuse a small
	// set of counterparties across many invoices.
	names := map[uuid.UUID]string{}
	counterpartyName := func(id uuid.UUID) string {
		if name, ok := names[id]; ok {
			return name
		}
		name := ""
		if c, err := s.customers.GetByID(ctx, id); err == nil && c != nil {
			name = c.Name
		}
		names[id] = name
		return name
	}

	row := 2
	for _, inv := range invs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !inv.Date.IsZero() {
			write(1, inv.Date.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, inv.InvoiceNumber)
		write(3, counterpartyName(inv.CustomerID))
		write(4, string(inv.InvoiceType))
		write(5, inv.AmountExclVAT)
		write(6, fmt.Sprintf("%.0f%%", inv.VATRate))
		write(7, inv.VATAmount)
		write(8, inv.AmountInclVAT)
		write(9, inv.FilePath)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 20) // invoice number
	_ = f.SetColWidth(sheet, "C", "C", 30) // counterparty
	_ = f.SetColWidth(sheet, "D", "D", 10) // type
	_ = f.SetColWidth(sheet, "E", "H", 16) // amounts
	_ = f.SetColWidth(sheet, "I", "I", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"workspace_id", workspaceID.String(),
		"rows", len(invs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
