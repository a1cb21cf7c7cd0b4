package frontend

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const (
	ConfigFileName = "trust.toml"
	DefaultEntry   = "src/main.trust"
	DefaultOut     = "out"
)

// TrustToml is the project manifest.
type TrustToml struct {
	Name    string `toml:"name" validate:"required,excludes=/"`
	Version string `toml:"version" validate:"required,semver"`
	Entry   string `toml:"entry,omitempty" validate:"omitempty,endswith=.trust"`
	Out     string `toml:"out,omitempty"`
	Lib     bool   `toml:"lib,omitempty"`
}

// DefaultTrustToml returns the manifest written by `trustc new`.
func DefaultTrustToml(name string) TrustToml {
	return TrustToml{
		Name:    name,
		Version: "0.1.0",
		Entry:   DefaultEntry,
		Out:     DefaultOut,
	}
}

func HandleTrustToml(tomlContent string) (TrustToml, error) {
	var tt TrustToml
	md, err := toml.Decode(tomlContent, &tt)
	if err != nil {
		return tt, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return tt, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if tt.Entry == "" {
		tt.Entry = DefaultEntry
	}
	if tt.Out == "" {
		tt.Out = DefaultOut
	}
	validate := validator.New()
	if err := validate.Struct(tt); err != nil {
		return tt, err
	}
	return tt, nil
}

// EntryPath resolves the entry file against the workspace root.
func (tt TrustToml) EntryPath(workspace string) string {
	return filepath.Join(workspace, filepath.FromSlash(tt.Entry))
}

// OutPath is where `trustc build` writes the C file.
func (tt TrustToml) OutPath(workspace string) string {
	return filepath.Join(workspace, filepath.FromSlash(tt.Out), tt.Name+".c")
}
