package frontend

import (
	"fmt"
	"strings"
)

// PreservedPrefix is reserved for names the code generator invents.
const PreservedPrefix = "__trust"

var definedNames = make(map[string]bool)

func defineName(suffix string) string {
	for existing := range definedNames {
		if strings.HasPrefix(suffix, existing) || strings.HasPrefix(existing, suffix) {
			panic(fmt.Sprintf("generated name %q overlaps %q", suffix, existing))
		}
	}
	definedNames[suffix] = true
	return PreservedPrefix + suffix
}

var (
	TEMP_PREFIX = defineName("_t%d")
	RET_BUF     = defineName("_ret_%s")
	INIT_FUNC   = defineName("_init")
	LOOP_INDEX  = defineName("_i%d")
)
