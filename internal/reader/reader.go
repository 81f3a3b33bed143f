// Package reader loads the whole input file into memory as text
package reader

import (
	"errors"
	"os"
	"unicode/utf8"

	"github.com/leetie/minigrep/internal/model"
)

var (
	errIsDirectory     = errors.New("is a directory")
	errInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// ReadInput returns the contents of fileName. Every failure is reported as *model.IOError.
func ReadInput(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", &model.IOError{Path: fileName, Err: err}
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", &model.IOError{Path: fileName, Err: errIsDirectory}
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", &model.IOError{Path: fileName, Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &model.IOError{Path: fileName, Err: errInvalidEncoding}
	}
	return string(raw), nil
}
