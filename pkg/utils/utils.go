package utils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
)

func MustNo(err error) {
	if err != nil {
		Fatal(err)
	}
}

func Fatal(v any) {
	fmt.Fprintln(os.Stderr, "fnld: "+"\033[0;1;31mfatal:\033[0m", fmt.Sprintf("%s", v))
	os.Exit(1)
}

// Read decodes a little-endian T from the front of data. Callers must make
// sure data holds at least binary.Size(T) bytes.
func Read[T any](data []byte) (val T) {
	reader := bytes.NewReader(data)
	err := binary.Read(reader, binary.LittleEndian, &val)
	MustNo(err)
	return
}

func Write[T any](data []byte, e T) {
	buf := &bytes.Buffer{}
	err := binary.Write(buf, binary.LittleEndian, e)
	MustNo(err)
	copy(data, buf.Bytes())
}

func RemovePrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		s = strings.TrimPrefix(s, prefix)
		return s, true
	}
	return s, false
}
