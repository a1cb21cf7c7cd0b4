package codegen

import (
	"fmt"
	"regexp"

	"github.com/trust-lang/trustc/frontend/sema"
)

var redundantNewlinesRegex = regexp.MustCompile(`(\r?\n){3,}`)

func removeRedundantBlankLines(s string) string {
	return redundantNewlinesRegex.ReplaceAllString(s, "$1$1")
}

// GenerateProject generates the C file for an analyzed project.
func GenerateProject(pa *sema.ProjectAnalysis) (string, error) {
	code, err := Generate(pa.Main)
	if err != nil {
		return "", fmt.Errorf("%s: %w", pa.Main.Src, err)
	}
	return code, nil
}
