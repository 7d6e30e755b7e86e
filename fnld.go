package main

import (
	"fmt"
	"os"

	"github.com/ksco/fnld/pkg/linker"
	"github.com/ksco/fnld/pkg/utils"
)

var version string

func main() {
	ctx := linker.NewContext()
	remaining := parseNonpositionalArgs(ctx, os.Args[1:])

	utils.MustNo(linker.ReadInputFiles(ctx, remaining))

	buf, err := linker.Link(ctx, ctx.Arg.Entry)
	utils.MustNo(err)
	utils.MustNo(linker.WriteOutput(ctx.Arg.Output, buf))

	if ctx.Arg.MapFile != "" {
		utils.MustNo(linker.WriteOutput(ctx.Arg.MapFile,
			linker.FormatMap(linker.GetLinkMap(ctx))))
	}
}

func parseNonpositionalArgs(ctx *linker.Context, args []string) []string {
	dashes := func(name string) []string {
		if len(name) == 1 {
			return []string{"-" + name}
		}
		if name[0] == 'o' {
			return []string{"--" + name}
		}
		return []string{"-" + name, "--" + name}
	}

	remaining := make([]string, 0)
	var arg string

	readArg := func(name string) bool {
		for _, opt := range dashes(name) {
			if args[0] == opt {
				if len(args) == 1 {
					utils.Fatal(fmt.Sprintf("option -%s: argument missing", name))
					return false
				}
				arg = args[1]
				args = args[2:]
				return true
			}

			prefix := opt
			if len(name) > 1 {
				prefix += "="
			}

			if rest, ok := utils.RemovePrefix(args[0], prefix); ok {
				arg = rest
				args = args[1:]
				return true
			}
		}
		return false
	}

	readFlag := func(name string) bool {
		for _, opt := range dashes(name) {
			if args[0] == opt {
				args = args[1:]
				return true
			}
		}
		return false
	}

	for len(args) > 0 {
		if readFlag("help") {
			fmt.Printf("Usage: %s [options] file...\n", os.Args[0])
			fmt.Println("  -o FILE, --output=FILE   write output to FILE (default a.out)")
			fmt.Println("  -e SYM, --entry=SYM      link starting from SYM (default main)")
			fmt.Println("  -Map FILE                write a link map to FILE")
			os.Exit(0)
		}

		if readArg("o") || readArg("output") {
			ctx.Arg.Output = arg
		} else if readFlag("v") || readFlag("version") {
			fmt.Printf("fnld %s\n", version)
			os.Exit(0)
		} else if readArg("e") || readArg("entry") {
			ctx.Arg.Entry = arg
		} else if readArg("Map") {
			ctx.Arg.MapFile = arg
		} else {
			if len(args[0]) > 1 && args[0][0] == '-' {
				utils.Fatal(fmt.Sprintf("unknown command line option: %s", args[0]))
			}
			remaining = append(remaining, args[0])
			args = args[1:]
		}
	}

	return remaining
}
