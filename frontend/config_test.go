package frontend

import (
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
	"github.com/pelletier/go-toml/v2"
)

func TestHandleTrustToml(t *testing.T) {
	tt, err := HandleTrustToml("name = \"demo\"\nversion = \"1.2.3\"\n")
	be.Err(t, err, nil)
	be.Equal(t, tt.Name, "demo")
	be.Equal(t, tt.Version, "1.2.3")
	be.Equal(t, tt.Entry, DefaultEntry)
	be.Equal(t, tt.Out, DefaultOut)
	be.Equal(t, tt.Lib, false)

	tt, err = HandleTrustToml("name = \"kit\"\nversion = \"0.1.0\"\nentry = \"lib/kit.trust\"\nout = \"build\"\nlib = true\n")
	be.Err(t, err, nil)
	be.Equal(t, tt.Entry, "lib/kit.trust")
	be.Equal(t, tt.Out, "build")
	be.Equal(t, tt.Lib, true)
}

func TestHandleTrustTomlErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "name = ", ""},
		{"unknown key", "name = \"a\"\nversion = \"0.1.0\"\nopt = 3\n", "unknown keys: opt"},
		{"missing name", "version = \"0.1.0\"\n", "Name"},
		{"missing version", "name = \"a\"\n", "Version"},
		{"bad version", "name = \"a\"\nversion = \"one\"\n", "semver"},
		{"slash in name", "name = \"a/b\"\nversion = \"0.1.0\"\n", "excludes"},
		{"entry extension", "name = \"a\"\nversion = \"0.1.0\"\nentry = \"main.rs\"\n", "endswith"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := HandleTrustToml(tc.content)
			if tc.want == "" {
				be.Err(t, err)
				return
			}
			be.Err(t, err, tc.want)
		})
	}
}

func TestDefaultTrustTomlRoundTrip(t *testing.T) {
	want := DefaultTrustToml("hello")
	data, err := toml.Marshal(want)
	be.Err(t, err, nil)

	got, err := HandleTrustToml(string(data))
	be.Err(t, err, nil)
	be.Equal(t, got, want)
}

func TestTrustTomlPaths(t *testing.T) {
	tt := DefaultTrustToml("demo")
	be.Equal(t, tt.EntryPath("ws"), filepath.Join("ws", "src", "main.trust"))
	be.Equal(t, tt.OutPath("ws"), filepath.Join("ws", "out", "demo.c"))
}
