package linker

type OutputSection struct {
	Name    string
	Members []*InputSection
	Size    uint64
}

func NewOutputSection(name string) *OutputSection {
	return &OutputSection{Name: name}
}

func (o *OutputSection) CopyBuf(ctx *Context) error {
	for _, isec := range o.Members {
		if err := isec.WriteTo(ctx, ctx.Buf[isec.Offset:]); err != nil {
			return err
		}
	}
	return nil
}
