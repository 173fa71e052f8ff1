// Package sheets implements the transaction store on top of Google Sheets:
// one "Transactions" sheet, fixed eight-column layout, append-only.
package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/sheets/v4"

	"github.com/budgetlens-dev/budgetlens/internal/common"
	"github.com/budgetlens-dev/budgetlens/internal/model"
)

const (
	sheetTitle  = "Transactions"
	headerRange = "Transactions!A1:H1"
	dataRange   = "Transactions!A2:H"
	appendRange = "Transactions!A:H"
)

// Metadata describes the spreadsheet after initialization.
type Metadata struct {
	SpreadsheetID string   `json:"spreadsheet_id"`
	Title         string   `json:"title"`
	Sheets        []string `json:"sheets"`
}

// Store reads and writes transaction rows in a single spreadsheet. The
// spreadsheet is the sole durable owner of the data; the process only ever
// holds transient copies.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        *slog.Logger
}

// NewStore binds a Sheets service to one spreadsheet id.
func NewStore(svc *sheets.Service, spreadsheetID string, logger *slog.Logger) *Store {
	return &Store{svc: svc, spreadsheetID: spreadsheetID, logger: logger}
}

// Init idempotently ensures the Transactions sheet exists with a frozen
// header row. Re-running against an initialized spreadsheet only rewrites
// the header.
func (s *Store) Init(ctx context.Context) (*Metadata, error) {
	spreadsheet, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, common.WrapAPIError(fmt.Sprintf("get spreadsheet %s", s.spreadsheetID), err)
	}

	titles := make([]string, 0, len(spreadsheet.Sheets))
	hasTransactions := false
	for _, sh := range spreadsheet.Sheets {
		titles = append(titles, sh.Properties.Title)
		if sh.Properties.Title == sheetTitle {
			hasTransactions = true
		}
	}

	if !hasTransactions {
		s.logger.Info("creating Transactions sheet", "spreadsheet_id", s.spreadsheetID)
		req := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: sheetTitle,
						GridProperties: &sheets.GridProperties{
							FrozenRowCount: 1,
						},
					},
				},
			}},
		}
		if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return nil, common.WrapAPIError("add Transactions sheet", err)
		}
		titles = append(titles, sheetTitle)
	}

	header := &sheets.ValueRange{Values: [][]any{headerRow()}}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, headerRange, header).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return nil, common.WrapAPIError("write header row", err)
	}

	s.logger.Info("sheet initialized", "spreadsheet", spreadsheet.Properties.Title)

	return &Metadata{
		SpreadsheetID: s.spreadsheetID,
		Title:         spreadsheet.Properties.Title,
		Sheets:        titles,
	}, nil
}

// Append writes one row per transaction and returns the count written.
// Appending is add-only: re-saving the same statement produces duplicate
// rows, by design of the store.
func (s *Store) Append(ctx context.Context, txns []model.Transaction, info model.AccountInfo) (int, error) {
	rows := make([][]any, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, encodeRow(t, info))
	}

	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, appendRange, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, common.WrapAPIError("append transactions", err)
	}

	s.logger.Info("appended transactions", "rows", len(rows), "bank", info.Bank)
	return len(rows), nil
}

// Recent returns up to limit transactions, keeping the store's own order
// (append order, which is ingestion-chronological, not transaction-date
// order). Rows that decode short are dropped silently.
func (s *Store) Recent(ctx context.Context, limit int) ([]model.Transaction, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, dataRange).Context(ctx).Do()
	if err != nil {
		return nil, common.WrapAPIError("read transactions", err)
	}

	values := resp.Values
	if limit > 0 && len(values) > limit {
		values = values[len(values)-limit:]
	}

	txns := make([]model.Transaction, 0, len(values))
	for _, row := range values {
		if t, ok := decodeRow(row); ok {
			txns = append(txns, t)
		}
	}

	s.logger.Debug("read transactions", "rows", len(resp.Values), "decoded", len(txns))
	return txns, nil
}
