// Package common provides spans, diagnostics and small containers shared by
// every compiler stage.
package common

import (
	protocol "github.com/gluax-lang/lsp"
)

type (
	dSeverity  = protocol.DiagnosticSeverity
	Diagnostic = protocol.Diagnostic
)

func NewDiagnostic(severity dSeverity, message string, span Span) *Diagnostic {
	return &protocol.Diagnostic{
		Severity: &severity,
		Message:  message,
		Range:    span.ToRange(),
	}
}

func ErrorDiag(msg string, span Span) *Diagnostic {
	return NewDiagnostic(protocol.DiagnosticSeverityError, msg, span)
}

// IsError reports whether d is an error (a nil severity counts as one).
func IsError(d Diagnostic) bool {
	return d.Severity == nil || *d.Severity == protocol.DiagnosticSeverityError
}

// HasErrors reports whether any of diags is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if IsError(d) {
			return true
		}
	}
	return false
}
