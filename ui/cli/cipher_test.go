// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

//nolint:errcheck
package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/payveri/affine/core/affine"
	"github.com/payveri/affine/internal/logging"
	"github.com/payveri/affine/internal/ui"
)

// isolateConfig points the user config directory at a temp dir so no real
// affine.yaml leaks into the test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

// executeCommand runs a fresh root command with args and returns its stdout.
// stdin may be nil.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	// Keep package-level log lines out of the test output.
	logging.SetOutput(&errOut)
	defer logging.SetOutput(os.Stderr)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	cmd.SetIn(stdin)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(s string) error {
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

func TestEncryptCommand_Args(t *testing.T) {
	isolateConfig(t)
	out, err := executeCommand(t, nil, "encrypt", "-a", "5", "-b", "8", "HELLO")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if out != "RCLLA\n" {
		t.Fatalf("expected RCLLA, got %q", out)
	}
}

func TestEncryptCommand_JoinsArgsAndUsesConfiguredKey(t *testing.T) {
	isolateConfig(t)
	out, err := executeCommand(t, nil, "encrypt", "PayVeri2025-Token", "ok")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	want := affine.Encrypt("PayVeri2025-Token ok", 5, 8) + "\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestDecryptCommand_Stdin(t *testing.T) {
	isolateConfig(t)
	out, err := executeCommand(t, strings.NewReader("FiyJcpw2025-Zagcv\n"), "decrypt", "-a", "5", "-b", "8")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if out != "PayVeri2025-Token\n" {
		t.Fatalf("unexpected plaintext %q", out)
	}
}

func TestEncryptCommand_EmptyInput(t *testing.T) {
	isolateConfig(t)
	_, err := executeCommand(t, strings.NewReader("   \n"), "encrypt")
	if err == nil || !strings.Contains(err.Error(), "Enter some text") {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestEncryptCommand_NonCoprimeKey(t *testing.T) {
	isolateConfig(t)
	_, err := executeCommand(t, nil, "encrypt", "-a", "13", "HELLO")
	if !errors.Is(err, affine.ErrNonCoprimeKey) {
		t.Fatalf("expected ErrNonCoprimeKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "a=13") {
		t.Fatalf("expected localized message naming a, got %q", err.Error())
	}
}

func TestDecryptCommand_OutOfRangeB(t *testing.T) {
	isolateConfig(t)
	_, err := executeCommand(t, nil, "decrypt", "-b", "26", "RCLLA")
	if !errors.Is(err, affine.ErrOutOfRangeB) {
		t.Fatalf("expected ErrOutOfRangeB, got %v", err)
	}
}

func TestEncryptCommand_RelaxedBFromEnv(t *testing.T) {
	isolateConfig(t)
	t.Setenv("AFFINE_KEY_STRICT_B", "false")
	out, err := executeCommand(t, nil, "encrypt", "-b", "30", "HELLO")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if want := affine.Encrypt("HELLO", 5, 4) + "\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestEncryptCommand_KeyFromConfigFile(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("key:\n  a: 3\n  b: 1\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := executeCommand(t, nil, "--config", path, "encrypt", "ABC")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if out != "BEH\n" {
		t.Fatalf("expected BEH, got %q", out)
	}
}

func TestEncryptCommand_MissingConfigFile(t *testing.T) {
	dir := isolateConfig(t)
	_, err := executeCommand(t, nil, "--config", filepath.Join(dir, "nope.yaml"), "encrypt", "HELLO")
	if err == nil || !strings.Contains(err.Error(), "--config") {
		t.Fatalf("expected --config error, got %v", err)
	}
}

func TestEncryptCommand_Copy(t *testing.T) {
	isolateConfig(t)
	clip := &fakeClipboard{}
	ui.SetDefaultClipboard(clip)
	t.Cleanup(func() { ui.SetDefaultClipboard(nil) })

	if _, err := executeCommand(t, nil, "encrypt", "--copy", "HELLO"); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if clip.text != "RCLLA" {
		t.Fatalf("expected clipboard to hold RCLLA, got %q", clip.text)
	}

	clip.err = errors.New("no display")
	_, err := executeCommand(t, nil, "encrypt", "--copy", "HELLO")
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Fatalf("expected clipboard error, got %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	isolateConfig(t)
	out, err := executeCommand(t, nil, "check", "-a", "5", "-b", "8")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "(a=5, b=8)") || !strings.Contains(out, "21") {
		t.Fatalf("unexpected check output %q", out)
	}

	_, err = executeCommand(t, nil, "check", "-a", "2")
	if !errors.Is(err, affine.ErrNonCoprimeKey) {
		t.Fatalf("expected ErrNonCoprimeKey, got %v", err)
	}
}

func TestCheckCommand_NonNumericKey(t *testing.T) {
	isolateConfig(t)
	_, err := executeCommand(t, nil, "check", "-a", "x")
	if err == nil {
		t.Fatalf("expected error for non-numeric a")
	}
}

func TestKeysCommand(t *testing.T) {
	isolateConfig(t)
	out, err := executeCommand(t, nil, "keys")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + 12 multipliers + blank + summary
	if len(lines) != 15 {
		t.Fatalf("expected 15 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "1 ") || !strings.Contains(lines[1], "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		t.Fatalf("identity row missing: %q", lines[1])
	}
	if !strings.Contains(out, "312 keys") {
		t.Fatalf("missing key space summary: %q", out)
	}
}

func TestCrackCommand(t *testing.T) {
	isolateConfig(t)
	out, err := executeCommand(t, nil, "crack", "--plain", "HELLO", "--cipher", "RCLLA")
	if err != nil {
		t.Fatalf("crack failed: %v", err)
	}
	if !strings.Contains(out, "1 candidate") || !strings.Contains(out, "(a=5, b=8)") {
		t.Fatalf("unexpected crack output %q", out)
	}

	out, err = executeCommand(t, nil, "crack", "--plain", "AB", "--cipher", "ZZ")
	if err != nil {
		t.Fatalf("crack failed: %v", err)
	}
	if !strings.Contains(out, "No key") {
		t.Fatalf("expected no match message, got %q", out)
	}

	_, err = executeCommand(t, nil, "crack", "--plain", "HELLO", "--cipher", "RCL")
	if !errors.Is(err, affine.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	dir := isolateConfig(t)
	out, err := executeCommand(t, nil, "--language", "id", "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	want := filepath.Join(dir, "affine", "affine.yaml")
	if !strings.Contains(out, want) {
		t.Fatalf("expected output to name %s, got %q", want, out)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), "language: id") {
		t.Fatalf("expected language id in config, got:\n%s", data)
	}

	out, err = executeCommand(t, nil, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if strings.TrimSpace(out) != want {
		t.Fatalf("expected %s, got %q", want, out)
	}
}

func TestEncryptCommand_IndonesianMessages(t *testing.T) {
	isolateConfig(t)
	_, err := executeCommand(t, nil, "--language", "id", "encrypt", "-a", "4", "HELLO")
	if !errors.Is(err, affine.ErrNonCoprimeKey) {
		t.Fatalf("expected ErrNonCoprimeKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "tidak coprime") {
		t.Fatalf("expected Indonesian message, got %q", err.Error())
	}
}
