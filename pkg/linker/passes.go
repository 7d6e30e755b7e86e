package linker

import (
	"math"

	"github.com/ksco/fnld/pkg/utils"
	"golang.org/x/exp/slices"
)

// ResolveSymbols merges the exports of obj into the symbol table. Nothing is
// merged if any export name is already defined.
func ResolveSymbols(ctx *Context, obj *ObjectFile) error {
	for _, sym := range obj.Symbols {
		if prev, ok := ctx.SymbolMap[sym.Name]; ok {
			return newSymbolError(ErrDuplicateSymbol,
				"duplicate symbol (first defined in "+prev.File.File.Name+")",
				sym.Name, obj.File.Name)
		}
	}

	for _, sym := range obj.Symbols {
		ctx.SymbolMap[sym.Name] = sym
	}
	ctx.Objs = append(ctx.Objs, obj)
	return nil
}

// MarkLiveSymbols returns every symbol needed to link entry, entry first.
// The walk uses an explicit work-list so deep reference chains cannot
// exhaust the goroutine stack.
func MarkLiveSymbols(ctx *Context, entry string) ([]*Symbol, error) {
	root := GetSymbolByName(ctx, entry)
	if root == nil {
		return nil, newSymbolError(ErrUndefinedSymbol, "entry symbol not exported", entry, "")
	}

	visited := utils.NewMapSet[string]()
	visited.Add(entry)

	live := make([]*Symbol, 0)
	roots := []*Symbol{root}
	for len(roots) > 0 {
		sym := roots[0]
		roots = roots[1:]
		live = append(live, sym)

		for _, rel := range sym.InputSection.Rels {
			if visited.Contains(rel.Sym) {
				continue
			}

			target := GetSymbolByName(ctx, rel.Sym)
			if target == nil {
				return nil, newSymbolError(ErrUndefinedSymbol, "undefined symbol",
					rel.Sym, sym.File.File.Name)
			}
			visited.Add(rel.Sym)
			roots = append(roots, target)
		}
	}
	return live, nil
}

// BinSections builds the output section from live: the entry first, then
// the rest in ascending name order.
func BinSections(ctx *Context, live []*Symbol) {
	for _, obj := range ctx.Objs {
		for _, isec := range obj.Sections {
			isec.IsAlive = false
			isec.Offset = math.MaxUint32
		}
	}

	names := make([]string, 0, len(live))
	for _, sym := range live[1:] {
		names = append(names, sym.Name)
	}
	slices.Sort(names)

	osec := NewOutputSection(".text")
	osec.Members = append(osec.Members, live[0].InputSection)
	for _, name := range names {
		osec.Members = append(osec.Members, GetSymbolByName(ctx, name).InputSection)
	}
	for _, isec := range osec.Members {
		isec.IsAlive = true
	}

	ctx.Text = osec
}

// ComputeSectionSizes assigns each member its output offset and returns the
// total output size. Offsets are written as u32, so the output must fit.
func ComputeSectionSizes(ctx *Context) (uint64, error) {
	offset := uint64(0)
	for _, isec := range ctx.Text.Members {
		if offset > math.MaxUint32 {
			return 0, newSymbolError(ErrLayout,
				"output exceeds 4 GiB, cannot place", isec.Name(), "")
		}
		isec.Offset = uint32(offset)
		offset += isec.Size()
	}

	ctx.Text.Size = offset
	return offset, nil
}
