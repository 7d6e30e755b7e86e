package linker

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every *Error returned by this package matches exactly one of
// these under errors.Is.
var (
	ErrIO              = errors.New("i/o error")
	ErrFormat          = errors.New("malformed object file")
	ErrDuplicateSymbol = errors.New("duplicate symbol")
	ErrDuplicateOffset = errors.New("duplicate export offset")
	ErrUndefinedSymbol = errors.New("undefined symbol")
	ErrLayout          = errors.New("inconsistent output layout")
)

type Error struct {
	Kind error
	Msg  string
	Name string // symbol, if any
	File string // input or output path, if any
	Pos  int64  // byte position inside File, -1 if unknown
	Err  error
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		if e.Pos >= 0 {
			fmt.Fprintf(&sb, ":%#x", e.Pos)
		}
		sb.WriteString(": ")
	}

	sb.WriteString(e.Msg)
	if e.Name != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Name)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newFormatError(file string, pos int, format string, args ...any) *Error {
	return &Error{
		Kind: ErrFormat,
		Msg:  fmt.Sprintf(format, args...),
		File: file,
		Pos:  int64(pos),
	}
}

func newIOError(file, msg string, err error) *Error {
	return &Error{Kind: ErrIO, Msg: msg, File: file, Pos: -1, Err: err}
}

func newSymbolError(kind error, msg, name, file string) *Error {
	return &Error{Kind: kind, Msg: msg, Name: name, File: file, Pos: -1}
}
