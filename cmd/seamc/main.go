// Package main provides seamc, the seam front-end compiler driver.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/seam-lang/seam/internal/ast"
	"github.com/seam-lang/seam/internal/build"
	"github.com/seam-lang/seam/internal/cli"
	"github.com/seam-lang/seam/internal/diagnostic"
	cerrors "github.com/seam-lang/seam/internal/errors"
)

var command = cli.CommandInfo{
	Name:        "seamc",
	Usage:       "seamc [OPTIONS] <FILE.seam>...",
	Description: "parse and type-resolve seam source files",
	Examples: []string{
		"seamc main.seam                 # check a file",
		"seamc -dump-ast main.seam       # print the resolved tree",
		"seamc -watch -v src/*.seam      # recompile on change",
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	cli.ExitWithCode(code, "")
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(command.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFile  = fs.String("config", cli.DefaultConfigFile, "configuration file path")
		dumpAST     = fs.Bool("dump-ast", false, "print the resolved syntax tree of each file")
		watch       = fs.Bool("watch", false, "recompile files when they change")
		jobs        = fs.Int("jobs", 0, "number of files compiled in parallel (default from config)")
		verbose     = fs.Bool("v", false, "verbose output")
		debug       = fs.Bool("debug", false, "debug output")
		color       = fs.String("color", "", "colored diagnostics: auto|always|never")
		showVersion = fs.Bool("version", false, "show version information")
		jsonVersion = fs.Bool("json", false, "print version information as JSON")
	)

	fs.Usage = func() {
		cli.PrintCommandUsage(stderr, command)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cli.ExitFailure
	}

	if *showVersion {
		cli.PrintVersion(stdout, command.Name, *jsonVersion)
		return cli.ExitOK
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: no input files")
		fs.Usage()
		return cli.ExitFailure
	}

	cfg, err := cli.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitFailure
	}

	// explicit flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "jobs":
			cfg.Jobs = *jobs
		case "v":
			cfg.Verbose = *verbose
		case "debug":
			cfg.Debug = *debug
		case "color":
			cfg.Color = *color
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitFailure
	}

	logger := cli.NewLoggerTo(stderr, cfg.Verbose, cfg.Debug)
	logger.Debug("config: jobs=%d color=%s module=%s@%s", cfg.Jobs, cfg.Color, cfg.Module.Name, cfg.Module.Version)

	out, _ := stderr.(*os.File)
	renderer := diagnostic.Renderer{Color: diagnostic.UseColor(cfg.Color, out)}

	paths := make([]string, fs.NArg())
	for i, p := range fs.Args() {
		if !filepath.IsAbs(p) && cfg.WorkDir != "" {
			p = filepath.Join(cfg.WorkDir, p)
		}
		paths[i] = p
	}

	report := func(results []build.Result) int {
		code := cli.ExitOK
		for _, r := range results {
			if r.Err != nil {
				_ = renderer.Render(stderr, r.Err, r.Source)
				if cerrors.IsInternal(r.Err) {
					code = cli.ExitInternal
				} else if code == cli.ExitOK {
					code = cli.ExitFailure
				}
				continue
			}
			if *dumpAST {
				if len(results) > 1 {
					fmt.Fprintf(stdout, "%s:\n", r.Path)
				}
				fmt.Fprintln(stdout, ast.Dump(r.Root))
			}
		}
		return code
	}

	compiler := build.NewCompiler(cfg, logger)

	if *watch {
		err := compiler.Watch(ctx, paths, func(results []build.Result) { report(results) })
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return cli.ExitFailure
		}
		return cli.ExitOK
	}

	results, err := compiler.Compile(ctx, paths)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitFailure
	}
	return report(results)
}
