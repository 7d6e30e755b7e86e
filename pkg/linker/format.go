package linker

import "unsafe"

// Object file layout, all integers little-endian:
//
//	Hdr
//	ExportCount x { u8 len; name; u32 offset }
//	ImportCount x { u8 len; name; u32 count; count x u32 addr }
//	CodeSize bytes of code
type Hdr struct {
	ExportCount uint32
	ImportCount uint32
	CodeSize    uint32
}

const HdrSize = int(unsafe.Sizeof(Hdr{}))

// RelSize is the width of the only fixup kind: an absolute u32 output offset.
const RelSize = 4

type Rela struct {
	Offset uint32
	Sym    string
}
