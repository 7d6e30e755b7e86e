package linker

import (
	"sort"

	"github.com/ksco/fnld/pkg/utils"
	"golang.org/x/exp/slices"
)

type Export struct {
	Name   string
	Offset uint32
}

type ObjectFile struct {
	InputFile
	Exports  []Export // ascending Offset once parsed
	Sections []*InputSection
}

func NewObjectFile(file *File) (*ObjectFile, error) {
	f, err := NewInputFile(file)
	if err != nil {
		return nil, err
	}
	return &ObjectFile{InputFile: *f}, nil
}

func (o *ObjectFile) parse() error {
	if o.Hdr.ExportCount == 0 {
		return nil
	}

	r := newReader(o.File, HdrSize)
	if err := o.initializeExports(r); err != nil {
		return err
	}
	if err := o.initializeImports(r); err != nil {
		return err
	}
	return o.initializeSections(r)
}

func (o *ObjectFile) initializeExports(r *reader) error {
	names := utils.NewMapSet[string]()
	offsets := utils.NewMapSet[uint32]()

	o.Exports = make([]Export, 0, o.Hdr.ExportCount)
	for i := uint32(0); i < o.Hdr.ExportCount; i++ {
		name, err := r.name("export")
		if err != nil {
			return err
		}
		if names.Contains(name) {
			return newSymbolError(ErrDuplicateSymbol, "duplicate symbol", name, o.File.Name)
		}

		offset, err := r.u32("export offset")
		if err != nil {
			return err
		}
		if offsets.Contains(offset) {
			return &Error{
				Kind: ErrDuplicateOffset,
				Msg:  "duplicate export offset",
				Name: name,
				File: o.File.Name,
				Pos:  int64(r.pos - 4),
			}
		}

		names.Add(name)
		offsets.Add(offset)
		o.Exports = append(o.Exports, Export{Name: name, Offset: offset})
	}

	sort.SliceStable(o.Exports, func(i, j int) bool {
		return o.Exports[i].Offset < o.Exports[j].Offset
	})

	o.Symbols = make([]*Symbol, 0, len(o.Exports))
	o.Sections = make([]*InputSection, 0, len(o.Exports))
	for _, exp := range o.Exports {
		if exp.Offset > o.Hdr.CodeSize {
			return newFormatError(o.File.Name, -1,
				"export %s starts at %#x, past the end of code (%#x bytes)",
				exp.Name, exp.Offset, o.Hdr.CodeSize)
		}

		sym := NewSymbol(o, exp.Name)
		o.Symbols = append(o.Symbols, sym)
		o.Sections = append(o.Sections, NewInputSection(o, sym))
	}
	return nil
}

// exportEnd is where the body of the idx-th export (by offset) stops.
func (o *ObjectFile) exportEnd(idx int) uint32 {
	if idx+1 < len(o.Exports) {
		return o.Exports[idx+1].Offset
	}
	return o.Hdr.CodeSize
}

// findEnclosingExport returns the index of the export with the greatest
// offset <= addr, or -1 if addr precedes every export.
func (o *ObjectFile) findEnclosingExport(addr uint32) int {
	idx, found := slices.BinarySearchFunc(o.Exports, addr, func(e Export, a uint32) int {
		switch {
		case e.Offset < a:
			return -1
		case e.Offset > a:
			return 1
		}
		return 0
	})
	if found {
		return idx
	}
	return idx - 1
}

func (o *ObjectFile) initializeImports(r *reader) error {
	for i := uint32(0); i < o.Hdr.ImportCount; i++ {
		name, err := r.name("import")
		if err != nil {
			return err
		}

		count, err := r.u32("import usage count")
		if err != nil {
			return err
		}

		for j := uint32(0); j < count; j++ {
			pos := r.pos
			addr, err := r.u32("import address")
			if err != nil {
				return err
			}

			idx := o.findEnclosingExport(addr)
			if idx < 0 {
				return newFormatError(o.File.Name, pos,
					"reference to %s at %#x precedes the first export", name, addr)
			}

			exp := o.Exports[idx]
			if uint64(addr)+RelSize > uint64(o.exportEnd(idx)) {
				return newFormatError(o.File.Name, pos,
					"reference to %s at %#x does not fit inside %s", name, addr, exp.Name)
			}

			o.Sections[idx].AddRel(addr-exp.Offset, name)
		}
	}
	return nil
}

func (o *ObjectFile) initializeSections(r *reader) error {
	code, err := r.bytes(int(o.Hdr.CodeSize), "code")
	if err != nil {
		return err
	}

	for i, isec := range o.Sections {
		isec.Contents = code[o.Exports[i].Offset:o.exportEnd(i)]
	}
	return nil
}
