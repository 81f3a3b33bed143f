// Package appmode provides 2 methods to work in preliminarily defined mode 'search' and 'serve'
package appmode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/leetie/minigrep/internal/matcher"
	"github.com/leetie/minigrep/internal/model"
	"github.com/leetie/minigrep/internal/reader"
)

// RunSearch reads the configured file, matches it and prints every result line to out.
// Nothing is printed if the file can't be read.
func RunSearch(cfg model.Config, out io.Writer) error {
	// прочитать весь файл
	contents, err := reader.ReadInput(cfg.FilePath())
	if err != nil {
		return err
	}

	result := matcher.Search(cfg.Query(), contents, cfg.LineNumbers(), cfg.CaseSensitive())

	// печатаем результат
	w := bufio.NewWriter(out)
	for _, line := range result {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to print result: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}
	return nil
}
