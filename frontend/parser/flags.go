package parser

type Flags uint8

const (
	// FlagTopLevel marks statements parsed directly under the program, where
	// the terminating `;` is optional.
	FlagTopLevel Flags = 1 << iota
	// FlagTrailingComma lets a comma-separated list end with `,`.
	FlagTrailingComma
)

// Has reports whether f includes all bits in mask.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}
