package model_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/leetie/minigrep/internal/model"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	require.Equal(t, "not enough arguments", model.ErrNotEnoughArgs.Error())
	require.Equal(t, "problem with argument parsing", model.ErrArgParsing.Error())
	require.NotErrorIs(t, model.ErrNotEnoughArgs, model.ErrArgParsing)

	var ve *model.ValidationError
	require.True(t, errors.As(error(model.ErrArgParsing), &ve))
}

func TestIOError(t *testing.T) {
	err := error(&model.IOError{Path: "poem.txt", Err: fs.ErrNotExist})

	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorContains(t, err, "poem.txt")

	var ioErr *model.IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "poem.txt", ioErr.Path)
}

func TestConfigAccessors(t *testing.T) {
	cfg := model.NewConfig("duct", "poem.txt", true, false)

	require.Equal(t, "duct", cfg.Query())
	require.Equal(t, "poem.txt", cfg.FilePath())
	require.True(t, cfg.CaseSensitive())
	require.False(t, cfg.LineNumbers())
}
