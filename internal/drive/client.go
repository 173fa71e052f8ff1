// Package drive wraps the Google Drive operations used to locate, fetch,
// and organize statement PDFs.
package drive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"google.golang.org/api/drive/v3"

	"github.com/budgetlens-dev/budgetlens/internal/common"
)

const folderMimeType = "application/vnd.google-apps.folder"

// FileInfo is the slice of Drive metadata the tools surface.
type FileInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	ModifiedTime string `json:"modifiedTime"`
	Size         int64  `json:"size,omitempty"`
}

// Client performs Drive operations against a single authenticated service.
type Client struct {
	svc    *drive.Service
	logger *slog.Logger
}

// NewClient wraps an authenticated Drive service.
func NewClient(svc *drive.Service, logger *slog.Logger) *Client {
	return &Client{svc: svc, logger: logger}
}

// Search lists PDF files matching an optional name query and parent folder,
// newest-modified first. Trashed files are always excluded; the PDF filter
// is applied server-side because only statements are of interest.
func (c *Client) Search(ctx context.Context, query, folderID string, maxResults int64) ([]FileInfo, error) {
	qParts := []string{"mimeType='application/pdf'", "trashed=false"}
	if query != "" {
		qParts = append(qParts, fmt.Sprintf("name contains '%s'", escapeQuery(query)))
	}
	if folderID != "" {
		qParts = append(qParts, fmt.Sprintf("'%s' in parents", escapeQuery(folderID)))
	}
	q := strings.Join(qParts, " and ")

	c.logger.Debug("searching drive", "query", q, "max_results", maxResults)

	resp, err := c.svc.Files.List().
		Q(q).
		PageSize(maxResults).
		Fields("files(id, name, mimeType, modifiedTime, size)").
		OrderBy("modifiedTime desc").
		Context(ctx).
		Do()
	if err != nil {
		return nil, common.WrapAPIError("drive search", err)
	}

	files := make([]FileInfo, 0, len(resp.Files))
	for _, f := range resp.Files {
		files = append(files, FileInfo{
			ID:           f.Id,
			Name:         f.Name,
			MimeType:     f.MimeType,
			ModifiedTime: f.ModifiedTime,
			Size:         f.Size,
		})
	}

	c.logger.Info("drive search complete", "matches", len(files))
	return files, nil
}

// Move reparents a file into the destination folder, detaching it from all
// current parents.
func (c *Client) Move(ctx context.Context, fileID, folderID string) (*FileInfo, error) {
	current, err := c.svc.Files.Get(fileID).Fields("parents, name").Context(ctx).Do()
	if err != nil {
		return nil, common.WrapAPIError(fmt.Sprintf("drive get %s", fileID), err)
	}

	previousParents := strings.Join(current.Parents, ",")

	updated, err := c.svc.Files.Update(fileID, &drive.File{}).
		AddParents(folderID).
		RemoveParents(previousParents).
		Fields("id, name, parents").
		Context(ctx).
		Do()
	if err != nil {
		return nil, common.WrapAPIError(fmt.Sprintf("drive move %s", fileID), err)
	}

	c.logger.Info("moved file", "file", current.Name, "folder", folderID)
	return &FileInfo{ID: updated.Id, Name: updated.Name}, nil
}

// CreateFolder creates a folder, optionally under a parent.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (*FileInfo, error) {
	meta := &drive.File{Name: name, MimeType: folderMimeType}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}

	folder, err := c.svc.Files.Create(meta).Fields("id, name").Context(ctx).Do()
	if err != nil {
		return nil, common.WrapAPIError(fmt.Sprintf("drive create folder %q", name), err)
	}

	c.logger.Info("created folder", "name", folder.Name, "id", folder.Id)
	return &FileInfo{ID: folder.Id, Name: folder.Name}, nil
}

// Download streams the file's content to dst.
func (c *Client) Download(ctx context.Context, fileID, dst string) error {
	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return common.WrapAPIError(fmt.Sprintf("drive download %s", fileID), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close download body", "error", closeErr)
		}
	}()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}

	c.logger.Debug("downloaded file", "id", fileID, "dst", dst)
	return nil
}

// escapeQuery escapes quote characters inside a Drive query string value.
func escapeQuery(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`)
}
