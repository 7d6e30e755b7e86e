package linker

import "github.com/ksco/fnld/pkg/utils"

type FileType = int8

const (
	FileTypeUnknown FileType = iota
	FileTypeEmpty   FileType = iota
	FileTypeObject  FileType = iota
)

// GetFileType classifies contents by header alone. FileTypeEmpty is a module
// with no exports: it may still list imports, but contributes nothing.
func GetFileType(contents []byte) FileType {
	if len(contents) < HdrSize {
		return FileTypeUnknown
	}

	hdr := utils.Read[Hdr](contents)
	if hdr.ExportCount == 0 {
		return FileTypeEmpty
	}
	return FileTypeObject
}
