package linker

import (
	"os"
	"path/filepath"
)

// WriteOutput stores buf at path. The bytes go to a temporary file next to
// path which replaces it only after a complete write, so a failed write
// never leaves a truncated artifact behind.
func WriteOutput(path string, buf []byte) (err error) {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return newIOError(path, "cannot open output file", err)
	}

	tmp := file.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = file.Write(buf); err != nil {
		file.Close()
		return newIOError(path, "cannot write output file", err)
	}
	if err = file.Chmod(0644); err != nil {
		file.Close()
		return newIOError(path, "cannot write output file", err)
	}
	if err = file.Close(); err != nil {
		return newIOError(path, "cannot write output file", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return newIOError(path, "cannot write output file", err)
	}
	return nil
}
