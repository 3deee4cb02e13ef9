package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runMain(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errw bytes.Buffer
	code = Main(args, &out, &errw)
	return code, out.String(), errw.String()
}

func TestMain_AddPrintsResult(t *testing.T) {
	code, stdout, stderr := runMain(t, "--add", "5", "3")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}
	if stdout != "Result: 8\n" {
		t.Fatalf("stdout = %q, want %q", stdout, "Result: 8\n")
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr, got %q", stderr)
	}
}

func TestMain_ResultFormatting(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"subtract", []string{"--subtract", "5", "3"}, "Result: 2\n"},
		{"multiply", []string{"--multiply", "2", "3"}, "Result: 6\n"},
		{"divide whole", []string{"--divide", "6", "3"}, "Result: 2\n"},
		{"divide fractional", []string{"--divide", "1", "4"}, "Result: 0.25\n"},
		{"negative result", []string{"--subtract", "3", "5"}, "Result: -2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runMain(t, tc.args...)
			if code != ExitSuccess {
				t.Fatalf("exit = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
			}
			if stdout != tc.want {
				t.Fatalf("stdout = %q, want %q", stdout, tc.want)
			}
		})
	}
}

func TestMain_DivideByZero(t *testing.T) {
	code, stdout, stderr := runMain(t, "--divide", "5", "0")
	if code != ExitEvalError {
		t.Fatalf("exit = %d, want %d", code, ExitEvalError)
	}
	if stdout != "" {
		t.Fatalf("expected no result on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "division by zero") {
		t.Fatalf("stderr = %q, want division by zero diagnostic", stderr)
	}
}

func TestMain_UsageErrorsExitOne(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"missing operand", []string{"--add", "5"}},
		{"extra operand", []string{"--add", "5", "3", "1"}},
		{"non-numeric operand", []string{"--add", "five", "3"}},
		{"unknown operation", []string{"--modulo", "5", "3"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runMain(t, tc.args...)
			if code != ExitUsageError {
				t.Fatalf("exit = %d, want %d", code, ExitUsageError)
			}
			if stdout != "" {
				t.Fatalf("expected no result on stdout, got %q", stdout)
			}
			if !strings.Contains(stderr, "Usage: calc") {
				t.Fatalf("stderr = %q, want usage text", stderr)
			}
		})
	}
}

func TestMain_Eval(t *testing.T) {
	code, stdout, stderr := runMain(t, "--eval", "(5 + 3) * 2")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}
	if stdout != "Result: 16\n" {
		t.Fatalf("stdout = %q, want %q", stdout, "Result: 16\n")
	}
}

func TestMain_EvalDivideByZero(t *testing.T) {
	code, stdout, stderr := runMain(t, "--eval", "1 / 0")
	if code != ExitEvalError {
		t.Fatalf("exit = %d, want %d", code, ExitEvalError)
	}
	if stdout != "" {
		t.Fatalf("expected no result on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "division by zero") {
		t.Fatalf("stderr = %q, want division by zero diagnostic", stderr)
	}
}

func TestMain_Help(t *testing.T) {
	code, stdout, stderr := runMain(t, "--help")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "Usage: calc") {
		t.Fatalf("stdout = %q, want usage text", stdout)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr, got %q", stderr)
	}
}

func TestMain_Version(t *testing.T) {
	code, stdout, _ := runMain(t, "--version")
	if code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if stdout != version+"\n" {
		t.Fatalf("stdout = %q, want %q", stdout, version+"\n")
	}
}

func TestMain_NilWritersDoNotPanic(t *testing.T) {
	if code := Main([]string{"--add", "1", "2"}, nil, nil); code != ExitSuccess {
		t.Fatalf("exit = %d, want %d", code, ExitSuccess)
	}
	if code := Main(nil, nil, nil); code != ExitUsageError {
		t.Fatalf("exit = %d, want %d", code, ExitUsageError)
	}
}
