package sema

import "strings"

// CFormat rewrites a println! format string for printf and counts its
// placeholders. Each `{...}` becomes %d, `{{` and `}}` are literal braces
// and `%` is escaped.
func CFormat(format string) (string, int) {
	var (
		sb    strings.Builder
		count int
	)
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '{' && i+1 < len(format) && format[i+1] == '{':
			sb.WriteByte('{')
			i++
		case c == '}' && i+1 < len(format) && format[i+1] == '}':
			sb.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				sb.WriteByte(c)
				continue
			}
			sb.WriteString("%d")
			count++
			i += end
		case c == '%':
			sb.WriteString("%%")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), count
}
