// Package matcher scans input text line by line and returns the lines containing the query
package matcher

import (
	"strconv"
	"strings"
)

// Search returns the lines of contents that contain query, in their original order.
// With lineNumbers each line is prefixed with its 1-based index and a space.
func Search(query, contents string, lineNumbers, caseSensitive bool) []string {
	if caseSensitive {
		return SearchCaseSensitive(query, contents, lineNumbers)
	}
	return SearchCaseInsensitive(query, contents, lineNumbers)
}

func SearchCaseSensitive(query, contents string, lineNumbers bool) []string {
	return scan(query, contents, lineNumbers, true)
}

func SearchCaseInsensitive(query, contents string, lineNumbers bool) []string {
	return scan(strings.ToLower(query), contents, lineNumbers, false)
}

// FindMatch reports whether line contains query. In case-insensitive mode
// query is expected to be lower-cased already.
func FindMatch(line, query string, caseSensitive bool) bool {
	if !caseSensitive { //-i
		line = strings.ToLower(line)
	}
	return strings.Contains(line, query)
}

func scan(query, contents string, lineNumbers, caseSensitive bool) []string {
	result := []string{}
	for i, line := range Lines(contents) {
		if FindMatch(line, query, caseSensitive) {
			result = append(result, normalizeLine(line, i+1, lineNumbers))
		}
	}
	return result
}

// Lines splits contents on '\n' dropping a trailing '\r' from every line.
// A terminating newline doesn't produce an extra empty line.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

func normalizeLine(line string, n int, lineNumbers bool) string {
	if !lineNumbers {
		return line
	}
	return strconv.Itoa(n) + " " + line
}
