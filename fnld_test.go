package main

import (
	"strings"
	"testing"

	"github.com/ksco/fnld/pkg/linker"
)

func TestParseNonpositionalArgs(t *testing.T) {
	ctx := linker.NewContext()
	remaining := parseNonpositionalArgs(ctx, []string{
		"-o", "0out", "a.o", "--entry=towersOfHanoi", "-Map", "0out.map", "b.o", "-",
	})

	if ctx.Arg.Output != "0out" || ctx.Arg.Entry != "towersOfHanoi" || ctx.Arg.MapFile != "0out.map" {
		t.Fatalf("args = %+v", ctx.Arg)
	}
	if strings.Join(remaining, " ") != "a.o b.o -" {
		t.Fatalf("remaining = %v", remaining)
	}
}

func TestParseNonpositionalArgsJoined(t *testing.T) {
	ctx := linker.NewContext()
	remaining := parseNonpositionalArgs(ctx, []string{"-ofoo", "-estrlen", "--output=bar", "--Map=m", "x.o"})

	if ctx.Arg.Output != "bar" || ctx.Arg.Entry != "strlen" || ctx.Arg.MapFile != "m" {
		t.Fatalf("args = %+v", ctx.Arg)
	}
	if len(remaining) != 1 || remaining[0] != "x.o" {
		t.Fatalf("remaining = %v", remaining)
	}
}

func TestDefaults(t *testing.T) {
	ctx := linker.NewContext()
	parseNonpositionalArgs(ctx, []string{"in.o"})
	if ctx.Arg.Output != "a.out" || ctx.Arg.Entry != "main" || ctx.Arg.MapFile != "" {
		t.Fatalf("args = %+v", ctx.Arg)
	}
}
