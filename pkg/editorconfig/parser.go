package editorconfig

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Property keys recognized inside sections. Everything else is dropped
// without diagnostics.
const (
	KeyMaxLineLength = "max_line_length"
	KeyIndentSize    = "indent_size"
	KeyTabWidth      = "tab_width"

	// Single-line collapse keys, in priority order: the kdocfmt key first,
	// then the IntelliJ Kotlin and Java conventions.
	KeyCollapseTool   = "kdocfmt_doc_do_not_wrap_if_one_line"
	KeyCollapseKotlin = "ij_kotlin_doc_do_not_wrap_if_one_line"
	KeyCollapseJava   = "ij_java_doc_do_not_wrap_if_one_line"
)

// UnsetValue is the sentinel property value that reverts a field to the
// baseline, bypassing the parent chain entirely.
const UnsetValue = "unset"

// recognizedGlobs are the section tokens kdocfmt understands. Sections whose
// header expands to none of these are discarded wholesale.
//
//nolint:gochecknoglobals // Read-only lookup table.
var recognizedGlobs = map[string]struct{}{
	"*":      {},
	"*.kt":   {},
	"*.kts":  {},
	"*.md":   {},
	"*.java": {},
}

// recognizedKeys are the in-section property keys kdocfmt retains.
//
//nolint:gochecknoglobals // Read-only lookup table.
var recognizedKeys = map[string]struct{}{
	KeyMaxLineLength:  {},
	KeyIndentSize:     {},
	KeyTabWidth:       {},
	KeyCollapseTool:   {},
	KeyCollapseKotlin: {},
	KeyCollapseJava:   {},
}

// Section is one glob-scoped block of properties, in file order.
type Section struct {
	// Header is the literal bracketed header text, e.g. "[*.kt]" or
	// "[{*.kt,*.kts}]". Eligibility tests run against this text.
	Header string

	// Values maps lowercase property keys to raw trimmed value strings.
	Values map[string]string
}

// Parse reads the .editorconfig file at path into an immutable Node.
//
// The parser is deliberately lenient: unknown sections, unknown keys,
// malformed lines, and properties outside any section are skipped silently.
// The only errors returned are I/O failures opening or reading the file.
//
// parent is attached to the resulting node unless the file declares
// root=true, which makes the node an absolute cascade boundary.
func Parse(path string, parent *Node) (*Node, error) {
	sections, root, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	return newNode(path, root, sections, parent), nil
}

// parseFile reads and scans one config file, releasing the handle on all
// paths.
func parseFile(path string) ([]Section, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sections, root, err := parseLines(f)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	return sections, root, nil
}

// parseLines scans the config text into retained sections and the root flag.
func parseLines(f *os.File) ([]Section, bool, error) {
	var (
		sections []Section
		root     bool

		// current points into sections while a recognized section is open.
		// -1 means either no section yet or a discarded one.
		current = -1

		// discarding is true while skipping keys under an unrecognized
		// section header.
		discarding bool
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";"):
			continue

		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			header := line
			if sectionRecognized(header) {
				sections = append(sections, Section{
					Header: header,
					Values: make(map[string]string),
				})
				current = len(sections) - 1
				discarding = false
			} else {
				current = -1
				discarding = true
			}

		case strings.Contains(line, "="):
			key, value, _ := strings.Cut(line, "=")
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.TrimSpace(value)

			if current < 0 {
				// Outside any retained section. Only the root flag is
				// meaningful here, and only when we are not inside the body
				// of a discarded section.
				if key == "root" && !discarding {
					if b, err := parseBool(value); err == nil {
						root = b
					}
				}
				continue
			}

			if _, ok := recognizedKeys[key]; ok {
				sections[current].Values[key] = value
			}

		default:
			// Malformed line; ignore.
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, false, err
	}

	return sections, root, nil
}

// sectionRecognized reports whether a bracketed header names at least one
// file type kdocfmt cares about. Brace expansion is limited to one layer,
// comma-split: "[{*.kt,*.kts}]" yields "*.kt" and "*.kts".
func sectionRecognized(header string) bool {
	inner := strings.TrimSuffix(strings.TrimPrefix(header, "["), "]")
	inner = strings.TrimSpace(inner)
	if strings.HasPrefix(inner, "{") && strings.HasSuffix(inner, "}") {
		inner = inner[1 : len(inner)-1]
	}

	for _, token := range strings.Split(inner, ",") {
		if _, ok := recognizedGlobs[strings.TrimSpace(token)]; ok {
			return true
		}
	}
	return false
}

// parseBool accepts case-insensitive "true" and "false" only.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
