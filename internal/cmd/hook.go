package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// runHook interprets command as a shell script after expanding {} to the
// rewritten file's path.
func runHook(command, path string, stdout, stderr io.Writer) error {
	expanded := strings.ReplaceAll(command, "{}", path)

	file, err := syntax.NewParser().Parse(strings.NewReader(expanded), "")
	if err != nil {
		return err
	}

	runner, err := interp.New(interp.StdIO(os.Stdin, stdout, stderr))
	if err != nil {
		return err
	}

	err = runner.Run(context.TODO(), file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return fmt.Errorf("hook exited with %d", status)
		}

		return err
	}

	return nil
}
