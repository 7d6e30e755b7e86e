package linker

func ReadInputFiles(ctx *Context, args []string) error {
	if len(args) == 0 {
		return newIOError("", "no input files", nil)
	}

	for _, arg := range args {
		file, err := NewFile(arg)
		if err != nil {
			return err
		}
		if err := ReadFile(ctx, file); err != nil {
			return err
		}
	}
	return nil
}

func ReadFile(ctx *Context, file *File) error {
	ft := GetFileType(file.Contents)
	switch ft {
	case FileTypeEmpty:
		return nil
	case FileTypeObject:
		obj, err := CreateObjectFile(file)
		if err != nil {
			return err
		}
		return ResolveSymbols(ctx, obj)
	default:
		_, err := NewInputFile(file)
		return err
	}
}

func CreateObjectFile(file *File) (*ObjectFile, error) {
	obj, err := NewObjectFile(file)
	if err != nil {
		return nil, err
	}
	if err := obj.parse(); err != nil {
		return nil, err
	}
	return obj, nil
}
