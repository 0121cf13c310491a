package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"cppemit/internal/ast"
	"cppemit/internal/compiler"
	"cppemit/internal/config"
	"cppemit/internal/formatter"
	"cppemit/internal/sample"
	"cppemit/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	switch os.Args[1] {
	case "emit":
		emitCmd(cfg, os.Args[2:])
	case "history":
		historyCmd(cfg, os.Args[2:])
	case "show":
		showCmd(cfg, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func emitCmd(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("emit", flag.ExitOnError)
	out := fs.String("o", "", "write the generated source to this file")
	indent := fs.Int("indent", cfg.Emit.Indent, "spaces per indentation level")
	prefix := fs.String("prefix", cfg.Emit.FuncPrefix, "prefix for emitted function names")
	bind := fs.Bool("bind", cfg.Emit.BindResults, "bind branch results of lowered conditionals")
	resultType := fs.String("result-type", "", "type of bound branch results (int32, int64, float64, ...)")
	db := fs.String("db", cfg.DBPath, "record the unit in this SQLite database")
	name := fs.String("name", "", "unit name used when recording")
	dumpIR := fs.Bool("ir", false, "print the IR tree instead of C++")
	verbose := fs.Bool("v", false, "verbose logging")
	_ = fs.Parse(args)
	logger := newLogger(*verbose)

	opts := cfg.Emit
	opts.Indent = *indent
	opts.FuncPrefix = *prefix
	opts.BindResults = *bind
	if *resultType != "" {
		t, err := config.ParseType(*resultType)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts.ResultType = t
	}
	if opts.BindResults && opts.ResultType == nil {
		opts.ResultType = ast.Int64Type
	}

	unit := sample.Unit()
	if *name != "" {
		unit.Name = *name
	}
	if *dumpIR {
		fmt.Print(formatter.New().FormatUnit(unit))
		return
	}
	gen := compiler.NewGenerator(opts)
	src, err := gen.Generate(unit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Debug("generated unit", "unit", unit.Name, "funcs", len(unit.Funcs), "bytes", len(src))

	if *out == "" {
		fmt.Print(src)
	} else if err := os.WriteFile(*out, []byte(src), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *db != "" {
		st, err := store.Open(*db)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer st.Close()
		funcs := make([]string, len(unit.Funcs))
		for i, fn := range unit.Funcs {
			funcs[i] = fn.Name
		}
		id, err := st.Save(context.Background(), unit.Name, funcs, src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Info("recorded unit", "id", id, "db", *db)
	}
}

func historyCmd(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	db := fs.String("db", cfg.DBPath, "SQLite database")
	_ = fs.Parse(args)
	st := openStore(*db)
	defer st.Close()
	recs, err := st.List(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, rec := range recs {
		fmt.Printf("%d\t%s\t%s\t%v\n", rec.ID, rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Name, rec.Funcs)
	}
}

func showCmd(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	db := fs.String("db", cfg.DBPath, "SQLite database")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "unit id required")
		os.Exit(1)
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid unit id %q\n", fs.Arg(0))
		os.Exit(1)
	}
	st := openStore(*db)
	defer st.Close()
	rec, err := st.Get(context.Background(), id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(rec.Source)
}

func openStore(path string) *store.Store {
	if path == "" {
		fmt.Fprintf(os.Stderr, "no database: pass -db or set %s\n", config.EnvDB)
		os.Exit(1)
	}
	st, err := store.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return st
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  cppemit emit [-o <file>] [-indent n] [-prefix p] [-bind] [-result-type t] [-db <path>] [-name <unit>] [-ir] [-v]")
	fmt.Fprintln(os.Stderr, "  cppemit history [-db <path>]")
	fmt.Fprintln(os.Stderr, "  cppemit show [-db <path>] <id>")
}
