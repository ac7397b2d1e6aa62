package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const (
	mimeFolder    = "application/vnd.google-apps.folder"
	mimeGoogleDoc = "application/vnd.google-apps.document"
	mimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func (d *implDrive) Upload(ctx context.Context, data []byte, folderID, filename string, convert bool) (string, error) {
	meta := &drive.File{
		Name:    filename,
		Parents: []string{folderID},
	}
	if convert {
		meta.MimeType = mimeGoogleDoc
	}

	f, err := d.svc.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeDocx)).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}

	d.logger.Info(ctx, "Uploaded %s (%d bytes) as %s", filename, len(data), f.Id)
	return f.Id, nil
}

func (d *implDrive) FindFile(ctx context.Context, folderID, ext string) (string, bool, error) {
	files, err := d.list(ctx, fmt.Sprintf("'%s' in parents and trashed=false", folderID))
	if err != nil {
		return "", false, fmt.Errorf("list folder %s: %w", folderID, err)
	}

	id, ok := MatchFile(files, ext)
	return id, ok, nil
}

func (d *implDrive) FindFolder(ctx context.Context, parentID string, keywords []string) (string, bool, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", parentID, mimeFolder)
	folders, err := d.list(ctx, q)
	if err != nil {
		return "", false, fmt.Errorf("list subfolders of %s: %w", parentID, err)
	}

	id, ok := MatchFolder(folders, keywords)
	return id, ok, nil
}

func (d *implDrive) Download(ctx context.Context, fileID string) (string, error) {
	meta, err := d.reader.Files.Get(fileID).Fields("name").SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("get file %s: %w", fileID, err)
	}

	resp, err := d.reader.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return "", fmt.Errorf("download %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(d.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	path := filepath.Join(d.tempDir, fileID+filepath.Ext(meta.Name))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	d.logger.Info(ctx, "Downloaded %s (%.2f MB) to %s", meta.Name, float64(n)/1024/1024, path)
	return path, nil
}

// list returns every file matching q, across pages, in the order Drive returns them.
func (d *implDrive) list(ctx context.Context, q string) ([]File, error) {
	var files []File
	err := d.reader.Files.List().
		Q(q).
		Fields("nextPageToken, files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Pages(ctx, func(page *drive.FileList) error {
			for _, f := range page.Files {
				files = append(files, File{ID: f.Id, Name: f.Name})
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return files, nil
}
