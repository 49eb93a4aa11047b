// internal/config/config.go
//
// Package config loads optional TOML defaults for the CLI tools. Values in the
// file replace built-in flag defaults; explicit flags still win.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"dnarle-core/rle"
)

// EnvVar names the environment variable consulted when --config is absent.
const EnvVar = "DNARLE_CONFIG"

// File mirrors the accepted TOML layout:
//
//	output = "json"
//	quiet = true
//	threads = 4
//
//	[encode]
//	verify = true
//
//	[decode]
//	max_length = 1000000
type File struct {
	Output           string `toml:"output" validate:"oneof=text json jsonl yaml msgpack fasta"`
	NoHeader         bool   `toml:"no_header"`
	Pretty           bool   `toml:"pretty"`
	Color            string `toml:"color" validate:"oneof=auto always never"`
	Quiet            bool   `toml:"quiet"`
	SkipInvalid      bool   `toml:"skip_invalid"`
	NoOutputExitCode *int   `toml:"no_output_exit_code" validate:"omitnil,min=0,max=255"`
	Threads          int    `toml:"threads" validate:"min=0"`

	Encode Encode `toml:"encode"`
	Decode Decode `toml:"decode"`
}

type Encode struct {
	Verify    bool `toml:"verify"`
	ShowInput bool `toml:"show_input"`
}

type Decode struct {
	MaxLength int `toml:"max_length" validate:"min=0"`
}

// Default returns the built-in defaults. Decoding is bounded unless the
// user sets max_length = 0.
func Default() File {
	one := 1
	return File{
		Output:           "text",
		Color:            "auto",
		NoOutputExitCode: &one,
		Decode:           Decode{MaxLength: rle.DefaultMaxLength},
	}
}

// Load reads path over the built-in defaults. Unknown keys are an error so
// that typos do not silently fall back to defaults.
func Load(path string) (File, error) {
	f := Default()
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		keys := make([]string, 0, len(und))
		for _, k := range und {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return f, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if f.NoOutputExitCode == nil {
		f.NoOutputExitCode = Default().NoOutputExitCode
	}
	if err := check(f); err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

var validate = newValidator()

// newValidator reports fields by their TOML keys.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
	})
	return v
}

func check(f File) error {
	err := validate.Struct(f)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.Namespace()
		if i := strings.IndexByte(key, '.'); i >= 0 {
			key = key[i+1:] // drop the "File." root
		}
		msgs = append(msgs, fmt.Sprintf("%s fails %s=%s (got %v)", key, fe.Tag(), fe.Param(), fe.Value()))
	}
	return errors.New("invalid " + strings.Join(msgs, "; "))
}

// Resolve picks the config file: the explicit path if set, else $DNARLE_CONFIG.
// With neither, the built-in defaults are returned.
func Resolve(explicit string, getenv func(string) string) (File, string, error) {
	path := explicit
	if path == "" && getenv != nil {
		path = getenv(EnvVar)
	}
	if path == "" {
		return Default(), "", nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), path, fmt.Errorf("config %s: file not found", path)
	}
	f, err := Load(path)
	return f, path, err
}
