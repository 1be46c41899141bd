package models

import "strings"

// CSVExtension is the only accepted upload file suffix.
const CSVExtension = ".csv"

// SelectedFile is a user-chosen file awaiting upload.
type SelectedFile struct {
	Name    string
	Content []byte
}

// IsCSV checks the file name suffix only; content is not inspected.
func (f SelectedFile) IsCSV() bool {
	return strings.HasSuffix(f.Name, CSVExtension)
}
