package linker

import (
	"bytes"
	"fmt"
)

type MapEntry struct {
	Name   string
	Offset uint32
	Size   uint64
	File   string
}

// GetLinkMap lists the symbols of the last successful link in output order.
func GetLinkMap(ctx *Context) []MapEntry {
	if ctx.Text == nil {
		return nil
	}

	entries := make([]MapEntry, 0, len(ctx.Text.Members))
	for _, isec := range ctx.Text.Members {
		entries = append(entries, MapEntry{
			Name:   isec.Name(),
			Offset: isec.Offset,
			Size:   isec.Size(),
			File:   isec.File.File.Name,
		})
	}
	return entries
}

func FormatMap(entries []MapEntry) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-8s %8s %s\t%s\n", "Offset", "Size", "Symbol", "File")
	for _, e := range entries {
		fmt.Fprintf(&buf, "%08x %8d %s\t%s\n", e.Offset, e.Size, e.Name, e.File)
	}
	return buf.Bytes()
}
