package linker

type ContextArg struct {
	Output  string
	Entry   string
	MapFile string
}

// Context is the state of one link: every module read so far plus the
// output of the most recent link. It is not safe for concurrent use.
type Context struct {
	Arg ContextArg

	SymbolMap map[string]*Symbol

	Objs []*ObjectFile

	Text *OutputSection
	Buf  []byte
}

func NewContext() *Context {
	return &Context{
		Arg: ContextArg{
			Output: "a.out",
			Entry:  "main",
		},
		SymbolMap: make(map[string]*Symbol),
	}
}
