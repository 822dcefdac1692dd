package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DocumentExtensions are the extensions the server's ingestion pipeline is known
// to accept. The check is advisory only: the server remains the authority.
var DocumentExtensions = []string{".docx", ".pdf", ".xlsx"}

// File represents a document read off disk, ready for upload.
type File struct {
	Path    string
	Content []byte
}

// Name returns the base name of the file, as sent to the server.
func (f *File) Name() string {
	return filepath.Base(f.Path)
}

// Read reads the given paths into Files. Paths are expanded to escape `~`.
func Read(paths []string) ([]*File, error) {
	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		path, err := ExpandPath(path)
		if err != nil {
			return nil, fmt.Errorf("expanding path: %w", err)
		}
		bytes, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		files = append(files, &File{Path: path, Content: bytes})
	}
	return files, nil
}

// IsRecognizedDocument returns true if the filename carries one of the given
// extensions. An empty extension list accepts everything.
func IsRecognizedDocument(filename string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	lowered := strings.ToLower(filename)
	for _, extension := range extensions {
		if strings.HasSuffix(lowered, extension) {
			return true
		}
	}
	return false
}

// ExpandPath expands a path to avoid `~`.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home dir: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// Exists returns true if the specified file exists.
func Exists(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking file existence: %w", err)
	}
	return !info.IsDir(), nil
}
