// Package model contains the search configuration, app launch parameters, errors and DTO
package model

type AppMode string

const (
	ModeSearch = AppMode("search")
	ModeServe  = AppMode("serve")
)

const DefaultServeAddress = "localhost:8080"

// AppInit - результат разбора аргументов командной строки
type AppInit struct {
	Mode    AppMode
	Address string
	Config  Config
}

// Config - неизменяемый набор параметров одного поиска
type Config struct {
	query         string
	filePath      string
	caseSensitive bool
	lineNumbers   bool
}

func NewConfig(query, filePath string, caseSensitive, lineNumbers bool) Config {
	return Config{
		query:         query,
		filePath:      filePath,
		caseSensitive: caseSensitive,
		lineNumbers:   lineNumbers,
	}
}

func (c Config) Query() string       { return c.query }
func (c Config) FilePath() string    { return c.filePath }
func (c Config) CaseSensitive() bool { return c.caseSensitive }
func (c Config) LineNumbers() bool   { return c.lineNumbers }

// SearchTask - задание на поиск, принимаемое в режиме serve
type SearchTask struct {
	TaskID      string `json:"tid"`
	Query       string `json:"query" binding:"required"`
	Contents    string `json:"contents"`
	Insensitive bool   `json:"insensitive"`  // i — то же инвертирование, что и у флага командной строки
	LineNumbers bool   `json:"line_numbers"` // l — префикс с номером строки
}

type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
