package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// columnAliases maps each canonical field to the header names that may
// carry it, tried in order; the first non-empty cell wins. The alternate
// names cover WordPress export tools and older spreadsheet templates.
var columnAliases = map[string][]string{
	"title":             {"title", "post_title"},
	"content":           {"content", "post_content", "body"},
	"excerpt":           {"excerpt", "post_excerpt"},
	"slug":              {"slug", "post_name"},
	"category":          {"category", "categories", "post_category"},
	"status":            {"status", "post_status"},
	"date":              {"date", "post_date", "published_at"},
	"author_email":      {"author_email", "editor_email", "email"},
	"author_name":       {"author", "author_name", "editor"},
	"author_first_name": {"author_first_name", "first_name"},
	"author_last_name":  {"author_last_name", "last_name"},
	"seo_title":         {"seo_title", "meta_title"},
	"seo_description":   {"seo_description", "meta_description"},
}

// csvRow is one parsed data row keyed by normalized header name.
type csvRow map[string]string

// Field returns the value for a canonical field, trying its header
// aliases in order.
func (row csvRow) Field(name string) string {
	for _, alias := range columnAliases[name] {
		if v := row[alias]; v != "" {
			return v
		}
	}
	return ""
}

// parseCSV reads a delimited text file into rows keyed by normalized
// header names. The delimiter is tab if the header line contains one,
// comma otherwise. Quoted fields may contain the delimiter; a doubled
// quote inside a quoted field is a literal quote. Multi-line quoted
// fields are not supported.
func parseCSV(r io.Reader) ([]csvRow, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, fmt.Errorf("file is empty")
	}
	headerLine := scanner.Text()

	delimiter := byte(',')
	if strings.ContainsRune(headerLine, '\t') {
		delimiter = '\t'
	}

	headers := splitCSVLine(headerLine, delimiter)
	for i, h := range headers {
		headers[i] = normalizeHeader(h)
	}

	var rows []csvRow
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitCSVLine(line, delimiter)
		row := make(csvRow, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(values) {
				row[h] = strings.TrimSpace(values[i])
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return rows, nil
}

// splitCSVLine tokenizes one line. A double quote toggles quoted state;
// inside a quoted field a doubled quote emits a literal quote.
func splitCSVLine(line string, delimiter byte) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == delimiter && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(ch)
		}
	}
	fields = append(fields, field.String())

	return fields
}

// normalizeHeader trims a header cell, strips a leading byte-order mark
// and lowercases it.
func normalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}
