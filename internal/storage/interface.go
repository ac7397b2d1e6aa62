package storage

import "context"

// Storage is the cloud drive holding source recordings and result documents.
type Storage interface {
	// Upload stores data under folderID and returns the new file id.
	// convert asks the drive to turn the upload into a native document.
	Upload(ctx context.Context, data []byte, folderID, filename string, convert bool) (string, error)
	// FindFile returns the first file in folderID whose name ends with ext.
	FindFile(ctx context.Context, folderID, ext string) (string, bool, error)
	// FindFolder returns the first subfolder of parentID whose name contains any keyword.
	FindFolder(ctx context.Context, parentID string, keywords []string) (string, bool, error)
	// Download copies the file to local temp storage and returns its path.
	Download(ctx context.Context, fileID string) (string, error)
}
