package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/futig/vectordb-client/internal/entity"
)

const pdfExtension = ".pdf"

// PDFsInFolder returns every regular file in folder whose name ends in
// ".pdf", ignoring case. Subdirectories are not descended into.
func PDFsInFolder(folder string) ([]entity.FileData, error) {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidFolder, folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFolder, err)
	}

	var files []entity.FileData
	for _, e := range entries {
		if !strings.EqualFold(filepath.Ext(e.Name()), pdfExtension) {
			continue
		}
		path := filepath.Join(folder, e.Name())
		if !isRegularFile(path) {
			continue
		}
		files = append(files, entity.FileData{Path: path, Filename: e.Name()})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrNoPDFFiles, folder)
	}

	return files, nil
}

// ExistingFiles parses a comma separated list of paths and keeps those that
// name existing regular files. Blank entries are dropped.
func ExistingFiles(input string) ([]entity.FileData, error) {
	var files []entity.FileData
	for _, raw := range strings.Split(input, ",") {
		path := strings.TrimSpace(raw)
		if path == "" || !isRegularFile(path) {
			continue
		}
		files = append(files, entity.FileData{Path: path, Filename: filepath.Base(path)})
	}

	if len(files) == 0 {
		return nil, entity.ErrNoValidFiles
	}

	return files, nil
}

// SanitizeFilename strips directory components and NUL bytes so the name
// is safe to store under a flat data folder.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\x00", "")
	return filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
