// Package config reads emission settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/xyproto/env/v2"

	"cppemit/internal/ast"
	"cppemit/internal/compiler"
)

const (
	EnvIndent      = "CPPEMIT_INDENT"
	EnvFuncPrefix  = "CPPEMIT_FUNC_PREFIX"
	EnvBindResults = "CPPEMIT_BIND_RESULTS"
	EnvResultType  = "CPPEMIT_RESULT_TYPE"
	EnvRawChars    = "CPPEMIT_RAW_CHARS"
	EnvDB          = "CPPEMIT_DB"
)

type Config struct {
	Emit compiler.Options
	// DBPath is the SQLite history database; empty disables recording.
	DBPath string
}

// Load reads the environment. Unset variables keep their defaults.
func Load() (*Config, error) {
	// env caches the environment on first use; refresh it so every Load
	// sees the current values.
	env.Load()
	opts := compiler.DefaultOptions()
	opts.Indent = env.Int(EnvIndent, opts.Indent)
	if opts.Indent < 0 {
		return nil, fmt.Errorf("%s must not be negative: %d", EnvIndent, opts.Indent)
	}
	opts.FuncPrefix = env.Str(EnvFuncPrefix)
	opts.BindResults = env.Bool(EnvBindResults)
	opts.RawChars = env.Bool(EnvRawChars)
	if name := env.Str(EnvResultType); name != "" {
		t, err := ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvResultType, err)
		}
		opts.ResultType = t
	}
	if opts.BindResults && opts.ResultType == nil {
		opts.ResultType = ast.Int64Type
	}
	return &Config{Emit: opts, DBPath: env.Str(EnvDB)}, nil
}

// ParseType maps a scalar type name to its TypeDef.
func ParseType(name string) (ast.TypeDef, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "void":
		return ast.VoidType, nil
	case "int32", "i32":
		return ast.Int32Type, nil
	case "int64", "i64":
		return ast.Int64Type, nil
	case "float32", "f32":
		return ast.Float32Type, nil
	case "float64", "f64":
		return ast.Float64Type, nil
	case "char":
		return ast.CharType, nil
	case "string":
		return ast.StringType, nil
	case "bool":
		return ast.BoolType, nil
	}
	return nil, fmt.Errorf("unknown type %q", name)
}
