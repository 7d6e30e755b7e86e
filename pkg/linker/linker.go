package linker

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Link lays out every symbol reachable from entry and returns the patched
// output. The entry symbol is placed at offset 0.
func Link(ctx *Context, entry string) ([]byte, error) {
	ctx.Text = nil
	ctx.Buf = nil

	live, err := MarkLiveSymbols(ctx, entry)
	if err != nil {
		return nil, err
	}

	BinSections(ctx, live)
	size, err := ComputeSectionSizes(ctx)
	if err != nil {
		ctx.Text = nil
		return nil, err
	}

	ctx.Buf = make([]byte, size)
	if err := ctx.Text.CopyBuf(ctx); err != nil {
		ctx.Text = nil
		ctx.Buf = nil
		return nil, err
	}
	return ctx.Buf, nil
}

// Linker is the library entry point: add modules, then link an entry
// symbol. A Linker is not safe for concurrent use without external
// synchronization.
type Linker struct {
	ctx *Context
}

func New() *Linker {
	return &Linker{ctx: NewContext()}
}

// AddFile reads and merges the module stored at path.
func (l *Linker) AddFile(path string) error {
	file, err := NewFile(path)
	if err != nil {
		return err
	}
	return ReadFile(l.ctx, file)
}

// AddModule merges a module already held in memory; name is used in errors
// and in the link map.
func (l *Linker) AddModule(name string, data []byte) error {
	return ReadFile(l.ctx, &File{Name: name, Contents: data})
}

// ReachableFrom returns the sorted names of every symbol needed to link
// entry, entry included.
func (l *Linker) ReachableFrom(entry string) ([]string, error) {
	live, err := MarkLiveSymbols(l.ctx, entry)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(live))
	for _, sym := range live {
		names = append(names, sym.Name)
	}
	slices.Sort(names)
	return names, nil
}

func (l *Linker) Link(entry string) ([]byte, error) {
	buf, err := Link(l.ctx, entry)
	if err != nil {
		return nil, err
	}
	return slices.Clone(buf), nil
}

// LinkOutput links entry and writes the result to path.
func (l *Linker) LinkOutput(path, entry string) error {
	buf, err := Link(l.ctx, entry)
	if err != nil {
		return err
	}
	return WriteOutput(path, buf)
}

// LinkMap describes the layout produced by the last successful link.
func (l *Linker) LinkMap() []MapEntry {
	return GetLinkMap(l.ctx)
}

// Symbols returns every exported name merged so far, sorted.
func (l *Linker) Symbols() []string {
	names := maps.Keys(l.ctx.SymbolMap)
	slices.Sort(names)
	return names
}
