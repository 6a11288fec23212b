// Package permissions checks read access to input device nodes and
// walks the user through fixing it. Distributions commonly restrict
// /dev/input to the input group, so first runs tend to land here.
package permissions

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/user"
	"strings"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrDenied is returned when the current user cannot read the device
// node.
var ErrDenied = errors.New("touchpad access denied")

// Swap points for tests.
var (
	stdinIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}

	currentUser = func() (string, error) {
		u, err := user.Current()
		if err != nil {
			return "", err
		}
		return u.Username, nil
	}

	runPrivileged = func(arg ...string) error {
		cmd := exec.Command("pkexec", arg...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
)

// Probe reports whether the current user can read the device node at
// path. ErrDenied for an access problem; other failures (such as a
// vanished node) pass through unchanged.
func Probe(path string) error {
	err := unix.Access(path, unix.R_OK)
	if err == nil {
		return nil
	}
	if errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM) {
		return fmt.Errorf("%w: %s", ErrDenied, path)
	}
	return &os.PathError{Op: "access", Path: path, Err: err}
}

// Remediate asks the user whether to widen access to path and runs the
// privileged fix when they agree. Callers probe again afterwards; a
// nil return only means the fix ran, not that it worked.
func Remediate(path string, in io.Reader, out io.Writer) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("%w: %s (run from a terminal to fix access interactively)", ErrDenied, path)
	}

	fmt.Fprintln(out, "Touchpad access is currently restricted. Would you like to unrestrict it?")
	fmt.Fprint(out, "[Yes]/no: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "ye", "yes", "ok", "sure":
	default:
		fmt.Fprintln(out, "Canceled.")
		return fmt.Errorf("%w: %s", ErrDenied, path)
	}

	username, err := currentUser()
	if err != nil {
		return fmt.Errorf("resolving current user: %w", err)
	}
	if err := runPrivileged("setfacl", "-m", "u:"+username+":r", path); err != nil {
		return fmt.Errorf("granting read access to %s: %w", path, err)
	}
	return nil
}
