package permissions

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func swapTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return isTTY }
	t.Cleanup(func() { stdinIsTerminal = orig })
}

func swapUser(t *testing.T, name string) {
	t.Helper()
	orig := currentUser
	currentUser = func() (string, error) { return name, nil }
	t.Cleanup(func() { currentUser = orig })
}

func swapPrivileged(t *testing.T, fn func(arg ...string) error) {
	t.Helper()
	orig := runPrivileged
	runPrivileged = fn
	t.Cleanup(func() { runPrivileged = orig })
}

func TestRemediateOutsideTerminal(t *testing.T) {
	swapTerminal(t, false)
	swapPrivileged(t, func(arg ...string) error {
		t.Fatal("ran privileged helper without a terminal")
		return nil
	})

	var out bytes.Buffer
	err := Remediate("/dev/input/event5", strings.NewReader(""), &out)
	if !errors.Is(err, ErrDenied) {
		t.Fatalf("Remediate error = %v, want ErrDenied", err)
	}
}

func TestRemediateAccepted(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"default yes", "\n"},
		{"explicit yes", "yes\n"},
		{"short yes", "y\n"},
		{"sure", "Sure\n"},
		{"eof counts as yes", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			swapTerminal(t, true)
			swapUser(t, "inka")

			var got []string
			swapPrivileged(t, func(arg ...string) error {
				got = arg
				return nil
			})

			var out bytes.Buffer
			if err := Remediate("/dev/input/event5", strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("Remediate: %v", err)
			}

			want := []string{"setfacl", "-m", "u:inka:r", "/dev/input/event5"}
			if strings.Join(got, " ") != strings.Join(want, " ") {
				t.Errorf("privileged command = %v, want %v", got, want)
			}
		})
	}
}

func TestRemediateDeclined(t *testing.T) {
	swapTerminal(t, true)
	swapPrivileged(t, func(arg ...string) error {
		t.Fatal("ran privileged helper after decline")
		return nil
	})

	var out bytes.Buffer
	err := Remediate("/dev/input/event5", strings.NewReader("no\n"), &out)
	if !errors.Is(err, ErrDenied) {
		t.Fatalf("Remediate error = %v, want ErrDenied", err)
	}
	if !strings.Contains(out.String(), "Canceled.") {
		t.Errorf("output %q does not acknowledge the decline", out.String())
	}
}

func TestRemediateHelperFailure(t *testing.T) {
	swapTerminal(t, true)
	swapUser(t, "inka")

	helperErr := errors.New("polkit refused")
	swapPrivileged(t, func(arg ...string) error { return helperErr })

	var out bytes.Buffer
	err := Remediate("/dev/input/event5", strings.NewReader("\n"), &out)
	if !errors.Is(err, helperErr) {
		t.Fatalf("Remediate error = %v, want wrapped %v", err, helperErr)
	}
}

func TestProbeMissingNode(t *testing.T) {
	err := Probe("/dev/input/event-does-not-exist")
	if err == nil {
		t.Fatal("Probe accepted a missing node")
	}
	if errors.Is(err, ErrDenied) {
		t.Fatalf("Probe error = %v, want a non-permission failure", err)
	}
}
