package linker

import (
	"os"
)

type File struct {
	Name     string
	Contents []byte
}

func NewFile(filename string) (*File, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, newIOError(filename, "cannot read input file", err)
	}
	return &File{
		Name:     filename,
		Contents: contents,
	}, nil
}
