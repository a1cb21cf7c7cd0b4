package main

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/trust-lang/trustc/frontend"
)

type NewCmd struct {
	Name string `arg:"" required:"" help:"Name of the new project."`
}

const mainTemplate = `fn main() {
    let answer = 42;
    println!("answer = {}", answer);
}
`

func (n *NewCmd) Run() error {
	projectDir := n.Name
	if err := os.MkdirAll(filepath.Join(projectDir, "src"), 0755); err != nil {
		return err
	}

	// .gitignore
	gitignoreContent := frontend.DefaultOut + "/\n"
	if err := os.WriteFile(filepath.Join(projectDir, ".gitignore"), []byte(gitignoreContent), 0644); err != nil {
		return err
	}

	// trust.toml
	tomlContent, err := toml.Marshal(frontend.DefaultTrustToml(filepath.Base(n.Name)))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(projectDir, frontend.ConfigFileName), tomlContent, 0644); err != nil {
		return err
	}

	// src/main.trust
	entry := filepath.Join(projectDir, filepath.FromSlash(frontend.DefaultEntry))
	return os.WriteFile(entry, []byte(mainTemplate), 0644)
}
