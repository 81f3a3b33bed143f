// Package parser puts os.Args into AppInit structure and validates it for any issues
package parser

import (
	"fmt"
	"strconv"

	"github.com/leetie/minigrep/internal/model"
	"github.com/spf13/cobra"
)

// RunFunc получает провалидированные параметры запуска
type RunFunc func(cmd *cobra.Command, ai *model.AppInit) error

// NewRootCommand returns the minigrep command. Flags are converted into the
// positional raw form [query, file, insensitive, line_numbers] and validated by Build.
func NewRootCommand(version string, run RunFunc) *cobra.Command {
	var (
		insensitive bool
		lineNumbers bool
		mode        string
		address     string
	)

	cmd := &cobra.Command{
		Use:   "minigrep [flags] QUERY FILENAME",
		Short: "Lightweight grep utility",
		Long: `minigrep prints every line of FILENAME that contains QUERY.
Matching is a plain substring search, optionally case-insensitive and
optionally prefixed with 1-based line numbers.

With --mode serve the same search is exposed over HTTP instead.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ai, err := InitAppMode(model.AppMode(mode), address, RawArgs(args, insensitive, lineNumbers))
			if err != nil {
				return err
			}
			return run(cmd, ai)
		},
	}

	cmd.Flags().BoolVarP(&insensitive, "insensitive", "i", false, "Sets case insensitivity")
	cmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "l", false, "Prefixes every matching line with its line number")
	cmd.Flags().StringVar(&mode, "mode", string(model.ModeSearch), "specify mode of the app: 'search' or 'serve'")
	cmd.Flags().StringVar(&address, "address", model.DefaultServeAddress, "listen address for 'serve'-mode")

	return cmd
}

// InitAppMode validates launch parameters for the chosen mode
func InitAppMode(mode model.AppMode, address string, rawArgs []string) (*model.AppInit, error) {
	ai := model.AppInit{Mode: mode}

	switch mode {
	case model.ModeSearch:
		cfg, err := Build(rawArgs)
		if err != nil {
			return nil, err
		}
		ai.Config = cfg
	case model.ModeServe:
		if len(rawArgs) > 0 {
			return nil, model.NewValidationError("'serve'-mode doesn't take QUERY and FILENAME")
		}
		if address == "" {
			return nil, model.NewValidationError("empty serve address")
		}
		ai.Address = address
	default:
		return nil, model.NewValidationError(fmt.Sprintf("unknown mode %q specified", mode))
	}

	return &ai, nil
}

// RawArgs собирает позиционную форму аргументов для Build. Если позиционных
// аргументов не хватает, флаги не добавляются, чтобы Build сообщил именно об этом.
func RawArgs(args []string, insensitive, lineNumbers bool) []string {
	if len(args) < 2 {
		return args
	}
	return []string{args[0], args[1], strconv.FormatBool(insensitive), strconv.FormatBool(lineNumbers)}
}

// Build validates raw arguments [query, file_path, insensitive, line_numbers].
// Case sensitivity is stored inverted: raw "true" means case-insensitive search.
func Build(rawArgs []string) (model.Config, error) {
	if len(rawArgs) < 2 {
		return model.Config{}, model.ErrNotEnoughArgs
	}

	insensitive, err := parseFlag(rawArgs, 2)
	if err != nil {
		return model.Config{}, err
	}
	lineNumbers, err := parseFlag(rawArgs, 3)
	if err != nil {
		return model.Config{}, err
	}

	return model.NewConfig(rawArgs[0], rawArgs[1], !insensitive, lineNumbers), nil
}

// отсутствующий флаг считается таким же некорректным, как и нераспознанный
func parseFlag(rawArgs []string, i int) (bool, error) {
	if i >= len(rawArgs) {
		return false, model.ErrArgParsing
	}
	switch rawArgs[i] {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, model.ErrArgParsing
	}
}
