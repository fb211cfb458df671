package cmd

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlinear/lib/expr"
	"github.com/benz9527/xlinear/xlog"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := NewRootCommand()
	root.AddCommand(NewBalanceCommand(), NewPostfixCommand(), NewPrefixCommand(), NewEvalCommand())
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBalanceCommand(t *testing.T) {
	out, err := executeCommand(t, "balance", "(x + [y + {z + w)])")
	require.NoError(t, err)
	require.Equal(t, "16\n", out)

	out, err = executeCommand(t, "balance", "({[]})")
	require.NoError(t, err)
	require.Equal(t, "-1\n", out)

	out, err = executeCommand(t, "balance", "--pairs", "AB", "Ax")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	_, err = executeCommand(t, "balance", "--pairs", "x", "expression")
	require.ErrorIs(t, err, expr.ErrInvalidArgument)

	_, err = executeCommand(t, "balance")
	require.Error(t, err)
}

func TestConvertCommands(t *testing.T) {
	out, err := executeCommand(t, "postfix", "(a+b)*(c+d)")
	require.NoError(t, err)
	require.Equal(t, "ab+cd+*\n", out)

	out, err = executeCommand(t, "prefix", "a+b*c")
	require.NoError(t, err)
	require.Equal(t, "+a*bc\n", out)

	_, err = executeCommand(t, "prefix", "11")
	require.ErrorIs(t, err, expr.ErrInvalidExpression)
}

func TestEvalCommand(t *testing.T) {
	out, err := executeCommand(t, "eval", "--workers", "2", "1+2*3", "(1+(2+(3+4)))/5", "7/2")
	require.NoError(t, err)
	require.Equal(t, "1+2*3\t7\n(1+(2+(3+4)))/5\t2\n7/2\t3.5\n", out)

	out, err = executeCommand(t, "eval", "--notation", "prefix", "+1*23")
	require.NoError(t, err)
	require.Equal(t, "+1*23\t7\n", out)

	out, err = executeCommand(t, "eval", "1+2", "11")
	require.ErrorIs(t, err, expr.ErrInvalidExpression)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "1+2\t3", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "11\terror: "))

	_, err = executeCommand(t, "eval", "--notation", "polish", "1")
	require.ErrorIs(t, err, expr.ErrInvalidArgument)
}

func TestEvalCommand_NotationFromEnv(t *testing.T) {
	t.Setenv("XLINEAR_NOTATION", "postfix")
	out, err := executeCommand(t, "eval", "123*+")
	require.NoError(t, err)
	require.Equal(t, "123*+\t7\n", out)
}

func TestLogEncoders(t *testing.T) {
	funcPtr := func(fn any) uintptr { return reflect.ValueOf(fn).Pointer() }

	lvlEnc, tsEnc := logEncoders(xlog.JSON)
	require.Equal(t, funcPtr(zapcore.LevelEncoder(zapcore.LowercaseLevelEncoder)), funcPtr(lvlEnc))
	require.Equal(t, funcPtr(zapcore.TimeEncoder(zapcore.RFC3339NanoTimeEncoder)), funcPtr(tsEnc))

	lvlEnc, tsEnc = logEncoders(xlog.PlainText)
	require.Equal(t, funcPtr(zapcore.LevelEncoder(zapcore.CapitalLevelEncoder)), funcPtr(lvlEnc))
	require.Equal(t, funcPtr(zapcore.TimeEncoder(zapcore.ISO8601TimeEncoder)), funcPtr(tsEnc))

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(logFormatConf, "json")
	require.NotNil(t, newLogger())
}
