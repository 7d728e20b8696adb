package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("apiref-lint", flag.ContinueOnError)
	flags.SetOutput(stderr)
	strict := flags.Bool("strict", false, "also run structural validation")
	allowCycles := flags.Bool("allow-cycles", true, "do not report recursive references")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [flags] paths...\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flags.Output(), "\nReport OpenAPI input the reference builder has to skip or degrade.\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	paths := flags.Args()
	if len(paths) == 0 {
		flags.Usage()
		return 2
	}

	linter := linter{strict: *strict, allowCycles: *allowCycles}
	var violations []violation
	for _, path := range paths {
		found, err := linter.lintFile(ctx, path)
		if err != nil {
			fmt.Fprintf(stderr, "lint %s: %v\n", path, err)
			return 1
		}
		violations = append(violations, found...)
	}

	if len(violations) == 0 {
		return 0
	}
	sortViolations(violations)
	for _, v := range violations {
		fmt.Fprintf(stdout, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
	return 1
}
