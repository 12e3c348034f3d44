package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hoarder/internal/config"
)

// stdinIsTerminal is a variable so tests can force the prompt path.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readSecret reads one line from in without echo when in is the terminal.
func readSecret(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && f == os.Stdin && stdinIsTerminal() {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptAndSaveAPIKey asks once for a TMDB key. An empty answer keeps video
// identification off for this run; anything else is used and persisted.
func promptAndSaveAPIKey(cmd *cobra.Command, ctx *commandContext, cfg *config.Config) error {
	errOut := cmd.ErrOrStderr()
	fmt.Fprint(errOut, "TMDB API key (leave empty to skip video identification): ")
	key, err := readSecret(cmd.InOrStdin())
	fmt.Fprintln(errOut)
	if err != nil {
		return fmt.Errorf("read api key: %w", err)
	}
	if key == "" {
		return nil
	}
	cfg.TMDB.APIKey = key

	path, err := ctx.targetConfigPath()
	if err != nil {
		return err
	}
	if err := config.SaveAPIKey(path, key); err != nil {
		return err
	}
	fmt.Fprintf(errOut, "Saved TMDB API key to %s\n", path)
	return nil
}
