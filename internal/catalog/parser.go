package catalog

import "strings"

// Row is one parsed data line, keyed by resolved column name.
type Row map[string]string

// canonicalHeaders is the fixed 8-column layout assumed when the export
// carries no recognizable header row.
var canonicalHeaders = []string{"id", "name", "price", "category", "note", "image", "tags", "gallery"}

var canonicalSet = func() map[string]bool {
	m := make(map[string]bool, len(canonicalHeaders))
	for _, h := range canonicalHeaders {
		m[h] = true
	}
	return m
}()

// ParseDelimited turns a delimited-text export into rows keyed by column
// name. The delimiter (comma or semicolon) is inferred once from the first
// line; quoted fields may contain it. When no first-line cell matches a
// canonical column name the line is treated as data and the canonical layout
// applies positionally.
func ParseDelimited(text string) []Row {
	cleaned := strings.TrimSpace(strings.TrimPrefix(text, "\ufeff"))
	if cleaned == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	headerLine := lines[0]
	delim := pickDelimiter(headerLine)

	rawHeaders := splitLine(headerLine, delim)
	named := false
	for i, h := range rawHeaders {
		rawHeaders[i] = strings.ToLower(h)
		if canonicalSet[rawHeaders[i]] {
			named = true
		}
	}

	headers := canonicalHeaders
	dataLines := lines
	if named {
		headers = rawHeaders
		dataLines = lines[1:]
	}

	rows := make([]Row, 0, len(dataLines))
	for _, line := range dataLines {
		values := splitLine(line, delim)
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// pickDelimiter counts raw separators on the header line and prefers the
// semicolon only when it is strictly more frequent. Quoted delimiters are
// counted too; the published source never triggers that case.
func pickDelimiter(line string) rune {
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// splitLine splits one line on the delimiter, keeping quoted segments whole.
// Each field then loses its surrounding quotes and is trimmed.
func splitLine(line string, delim rune) []string {
	fields := make([]string, 0, len(canonicalHeaders))
	var b strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == delim && !inQuotes:
			fields = append(fields, cleanField(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(fields, cleanField(b.String()))
}

func cleanField(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}
