package linker

import (
	"github.com/ksco/fnld/pkg/utils"
)

type InputFile struct {
	File    *File
	Hdr     Hdr
	Symbols []*Symbol
}

func NewInputFile(file *File) (*InputFile, error) {
	if GetFileType(file.Contents) == FileTypeUnknown {
		return nil, newFormatError(file.Name, 0,
			"file too small: %d bytes, header needs %d", len(file.Contents), HdrSize)
	}

	return &InputFile{
		File: file,
		Hdr:  utils.Read[Hdr](file.Contents),
	}, nil
}

