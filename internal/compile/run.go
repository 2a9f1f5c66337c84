package compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CheckOptions configures a compiler invocation.
type CheckOptions struct {
	// Dir is the directory the compiler runs in; it must contain the
	// project manifest. Empty means the current directory.
	Dir string
	// Surge overrides the compiler executable. Empty means "surge" from PATH.
	Surge string
	// Extra is appended to the argument list verbatim.
	Extra []string
}

// Check runs `surge check --message-format=json` and feeds every stream
// message to fn as it arrives. The compiler exiting non-zero is not by itself
// an error: a project full of broken code still produces a usable stream.
// Only a failure to start, a broken stream, or fn aborting is reported.
func Check(ctx context.Context, opts CheckOptions, fn func(Message) error) error {
	bin := opts.Surge
	if bin == "" {
		bin = "surge"
	}
	args := append([]string{"check", "--message-format=json"}, opts.Extra...)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = opts.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("compile: pipe stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("compile: start %s: %w", bin, err)
	}

	decodeErr := Decode(stdout, fn)
	waitErr := cmd.Wait()

	if decodeErr != nil {
		return decodeErr
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if waitErr != nil {
		var exit *exec.ExitError
		if errors.As(waitErr, &exit) {
			// Non-zero exit with a well-formed stream is normal operation.
			return nil
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("compile: run %s: %w: %s", bin, waitErr, msg)
		}
		return fmt.Errorf("compile: run %s: %w", bin, waitErr)
	}
	return nil
}
