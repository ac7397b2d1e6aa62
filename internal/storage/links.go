package storage

import (
	"strings"
)

// File is the id and name of a drive entry.
type File struct {
	ID   string
	Name string
}

// ParseFolderID accepts a folder link ("folders/<id>?..."), an open link
// ("?id=<id>&..."), or a bare id.
func ParseFolderID(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)

	var id string
	switch {
	case strings.Contains(ref, "folders/"):
		_, rest, _ := strings.Cut(ref, "folders/")
		id, _, _ = strings.Cut(rest, "?")
		id = strings.TrimSuffix(id, "/")
	case strings.Contains(ref, "id="):
		_, rest, _ := strings.Cut(ref, "id=")
		id, _, _ = strings.Cut(rest, "&")
	case !strings.ContainsAny(ref, "/:?& \t"):
		id = ref
	}

	if id == "" {
		return "", false
	}
	return id, true
}

func FolderLink(id string) string {
	return "https://drive.google.com/drive/folders/" + id + "?usp=sharing"
}

func FileLink(id string) string {
	return "https://drive.google.com/file/d/" + id + "/view"
}

// MatchFile returns the first file whose name ends with ext, ignoring case.
func MatchFile(files []File, ext string) (string, bool) {
	ext = strings.ToLower(ext)
	for _, f := range files {
		if strings.HasSuffix(strings.ToLower(f.Name), ext) {
			return f.ID, true
		}
	}
	return "", false
}

// MatchFolder returns the first folder whose name contains any keyword, ignoring case.
func MatchFolder(folders []File, keywords []string) (string, bool) {
	for _, f := range folders {
		name := strings.ToLower(f.Name)
		for _, kw := range keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" && strings.Contains(name, kw) {
				return f.ID, true
			}
		}
	}
	return "", false
}
