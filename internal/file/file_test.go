package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRecognizedDocument(t *testing.T) {
	tests := []struct {
		filename   string
		extensions []string
		want       bool
	}{
		{"contract.docx", DocumentExtensions, true},
		{"report.pdf", DocumentExtensions, true},
		{"figures.xlsx", DocumentExtensions, true},
		{"REPORT.PDF", DocumentExtensions, true},
		{"malware.exe", DocumentExtensions, false},
		{"notes.txt", DocumentExtensions, false},
		{"anything.bin", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			require.Equal(t, tt.want, IsRecognizedDocument(tt.filename, tt.extensions))
		})
	}
}

func TestRead(t *testing.T) {
	t.Run("reads files into memory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "contract.docx")
		require.NoError(t, os.WriteFile(path, []byte("contract text"), 0644))

		files, err := Read([]string{path})
		require.NoError(t, err)
		require.Len(t, files, 1)
		require.Equal(t, path, files[0].Path)
		require.Equal(t, "contract.docx", files[0].Name())
		require.Equal(t, []byte("contract text"), files[0].Content)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := Read([]string{filepath.Join(t.TempDir(), "missing.pdf")})
		require.Error(t, err)
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/documents/contract.docx")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "documents/contract.docx"), expanded)

	untouched, err := ExpandPath("/tmp/contract.docx")
	require.NoError(t, err)
	require.Equal(t, "/tmp/contract.docx", untouched)
}
