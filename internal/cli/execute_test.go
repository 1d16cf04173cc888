package cli

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper function to run Execute with different os.Args
func testMain(args []string) (exitCode int) {
	// Save original os.Args and defer restoring it
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	// Save original os.Exit and defer restoring it
	defer func() { exitFunc = os.Exit }()

	// Mock os.Exit
	exitFunc = func(code int) {
		exitCode = code
	}

	os.Args = args
	Execute(context.Background(), "test")

	return exitCode
}

func TestMainHelp(t *testing.T) {
	require.Equal(t, ExitOK, testMain([]string{"hamcycle", "--help"}))
}

func TestMainNoArgsError(t *testing.T) {
	require.Equal(t, ExitUsage, testMain([]string{"hamcycle"}))
}

func TestMainMissingFile(t *testing.T) {
	require.Equal(t, ExitFailure, testMain([]string{"hamcycle", "--config", writeConfig(t), "/nonexistent/graph.txt"}))
}
