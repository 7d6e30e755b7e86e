package linker

import (
	"math"

	"github.com/ksco/fnld/pkg/utils"
	"golang.org/x/exp/slices"
)

// InputSection is the code body of one exported function together with the
// places inside it that need another symbol's address.
type InputSection struct {
	File     *ObjectFile
	Symbol   *Symbol
	Contents []byte
	Rels     []Rela // sorted by Offset, one entry per offset
	Offset   uint32 // position in the output, valid while IsAlive
	IsAlive  bool
}

func NewInputSection(file *ObjectFile, sym *Symbol) *InputSection {
	s := &InputSection{
		File:   file,
		Symbol: sym,
		Offset: math.MaxUint32,
	}
	sym.InputSection = s
	return s
}

func (s *InputSection) Name() string {
	return s.Symbol.Name
}

func (s *InputSection) Size() uint64 {
	return uint64(len(s.Contents))
}

// AddRel records that sym's address goes at offset. A second record for the
// same offset replaces the first.
func (s *InputSection) AddRel(offset uint32, sym string) {
	idx, found := slices.BinarySearchFunc(s.Rels, offset, func(r Rela, off uint32) int {
		switch {
		case r.Offset < off:
			return -1
		case r.Offset > off:
			return 1
		}
		return 0
	})
	if found {
		s.Rels[idx].Sym = sym
		return
	}
	s.Rels = slices.Insert(s.Rels, idx, Rela{Offset: offset, Sym: sym})
}

func (s *InputSection) WriteTo(ctx *Context, buf []byte) error {
	copy(buf, s.Contents)
	return s.ApplyRelocAlloc(ctx, buf)
}

func (s *InputSection) ApplyRelocAlloc(ctx *Context, buf []byte) error {
	for _, rel := range s.Rels {
		sym := GetSymbolByName(ctx, rel.Sym)
		if sym == nil || !sym.IsAlive() {
			return &Error{
				Kind: ErrLayout,
				Msg:  "relocation target missing from output of " + s.Name(),
				Name: rel.Sym,
				Pos:  -1,
			}
		}

		utils.Write[uint32](buf[rel.Offset:rel.Offset+RelSize], uint32(sym.GetAddr()))
	}
	return nil
}
