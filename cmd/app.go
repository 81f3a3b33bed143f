package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/leetie/minigrep/internal/appmode"
	"github.com/leetie/minigrep/internal/model"
	"github.com/leetie/minigrep/internal/parser"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

var errPrefix = color.New(color.FgRed, color.Bold)

func main() {
	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := parser.NewRootCommand(version, func(cmd *cobra.Command, ai *model.AppInit) error {
		// запуск приложения в указанном режиме
		switch ai.Mode {
		case model.ModeServe:
			return appmode.RunServer(ctx, stop, ai.Address)
		default:
			return appmode.RunSearch(ai.Config, cmd.OutOrStdout())
		}
	})

	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !term.IsTerminal(int(os.Stderr.Fd())) {
			errPrefix.DisableColor()
		}
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	errPrefix.Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}
