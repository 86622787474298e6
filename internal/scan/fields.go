package scan

import "strings"

// Register lines sit at fixed offsets below the power-off marker.
const (
	firstRegisterOffset = 2
	lastRegisterOffset  = 3
)

// Field is one key=value register token.
type Field struct {
	Key   string
	Value string
}

// Fields extracts register fields from the two lines following the marker's
// blank separator. Lines past the end of input are ignored.
func Fields(lines []string, marker int) []Field {
	var fields []Field
	for idx := marker + firstRegisterOffset; idx <= marker+lastRegisterOffset; idx++ {
		if idx < 0 || idx >= len(lines) {
			continue
		}
		fields = append(fields, lineFields(lines[idx])...)
	}
	return fields
}

func lineFields(line string) []Field {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return nil
	}
	var fields []Field
	for _, tok := range tokens[1:] {
		if field, ok := parseField(tok); ok {
			fields = append(fields, field)
		}
	}
	return fields
}

// parseField accepts tokens shaped like key=value. The value ends at a second
// '=' if one is present. The iopl flag is never reported.
func parseField(tok string) (Field, bool) {
	if !strings.Contains(tok, "=") || strings.HasPrefix(tok, "=") {
		return Field{}, false
	}
	if strings.Contains(tok, "iopl") {
		return Field{}, false
	}
	parts := strings.Split(tok, "=")
	if parts[1] == "" {
		return Field{}, false
	}
	return Field{Key: parts[0], Value: parts[1]}, true
}
