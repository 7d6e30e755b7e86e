package linker

import "github.com/ksco/fnld/pkg/utils"

// reader walks an object file front to back. Every read is bounds-checked
// so a truncated file surfaces as ErrFormat instead of a panic.
type reader struct {
	file *File
	pos  int
}

func newReader(file *File, pos int) *reader {
	return &reader{file: file, pos: pos}
}

func (r *reader) need(n int, what string) error {
	if len(r.file.Contents)-r.pos < n {
		return newFormatError(r.file.Name, r.pos,
			"truncated %s: need %d bytes, have %d", what, n, len(r.file.Contents)-r.pos)
	}
	return nil
}

func (r *reader) u8(what string) (uint8, error) {
	if err := r.need(1, what); err != nil {
		return 0, err
	}
	val := r.file.Contents[r.pos]
	r.pos++
	return val, nil
}

func (r *reader) u32(what string) (uint32, error) {
	if err := r.need(4, what); err != nil {
		return 0, err
	}
	val := utils.Read[uint32](r.file.Contents[r.pos:])
	r.pos += 4
	return val, nil
}

func (r *reader) bytes(n int, what string) ([]byte, error) {
	if err := r.need(n, what); err != nil {
		return nil, err
	}
	bs := r.file.Contents[r.pos : r.pos+n]
	r.pos += n
	return bs, nil
}

func (r *reader) name(what string) (string, error) {
	n, err := r.u8(what + " name length")
	if err != nil {
		return "", err
	}
	bs, err := r.bytes(int(n), what+" name")
	if err != nil {
		return "", err
	}
	return string(bs), nil
}
