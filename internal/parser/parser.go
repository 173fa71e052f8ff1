// Package parser orchestrates the statement pipeline: fetch the PDF,
// rasterize its pages, and hand them to the extraction model.
package parser

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/budgetlens-dev/budgetlens/internal/drive"
	"github.com/budgetlens-dev/budgetlens/internal/gemini"
	"github.com/budgetlens-dev/budgetlens/internal/model"
	"github.com/budgetlens-dev/budgetlens/internal/pdf"
)

// Parser ties the Drive client and extraction client together.
type Parser struct {
	drive  *drive.Client
	gemini *gemini.Client
	logger *slog.Logger
}

// New creates a Parser from its injected collaborators.
func New(driveClient *drive.Client, geminiClient *gemini.Client, logger *slog.Logger) *Parser {
	return &Parser{drive: driveClient, gemini: geminiClient, logger: logger}
}

// ParseFromDrive downloads the statement PDF into a temporary directory,
// parses it, and cleans up. The temp directory is removed on all paths.
func (p *Parser) ParseFromDrive(ctx context.Context, fileID string) (*model.StatementData, error) {
	tempDir, err := os.MkdirTemp("", "budgetlens-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tempDir); rmErr != nil {
			p.logger.Warn("failed to remove temp dir", "dir", tempDir, "error", rmErr)
		}
	}()

	pdfPath := filepath.Join(tempDir, "statement.pdf")

	p.logger.Info("downloading statement", "file_id", fileID)
	if err := p.drive.Download(ctx, fileID, pdfPath); err != nil {
		return nil, err
	}

	return p.ParseLocal(ctx, pdfPath)
}

// ParseLocal parses a statement PDF already on local disk.
func (p *Parser) ParseLocal(ctx context.Context, path string) (*model.StatementData, error) {
	pages, err := pdf.Render(path, p.logger)
	if err != nil {
		return nil, err
	}

	data, err := p.gemini.ExtractStatement(ctx, pages)
	if err != nil {
		return nil, err
	}

	p.logger.Info("statement parsed",
		"bank", data.AccountInfo.Bank,
		"period", fmt.Sprintf("%s to %s", data.AccountInfo.StatementPeriodStart, data.AccountInfo.StatementPeriodEnd),
		"transactions", len(data.Transactions))

	return data, nil
}
