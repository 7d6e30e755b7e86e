package linker

type Symbol struct {
	File         *ObjectFile
	InputSection *InputSection

	Name string
}

func NewSymbol(file *ObjectFile, name string) *Symbol {
	return &Symbol{File: file, Name: name}
}

func GetSymbolByName(ctx *Context, name string) *Symbol {
	return ctx.SymbolMap[name]
}

// GetAddr is the symbol's offset in the output. Only meaningful for symbols
// placed by the most recent link.
func (s *Symbol) GetAddr() uint64 {
	return uint64(s.InputSection.Offset)
}

func (s *Symbol) IsAlive() bool {
	return s.InputSection != nil && s.InputSection.IsAlive
}
