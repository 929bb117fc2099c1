package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vinculum/internal/numeral"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--color", "off"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestAutoDispatch(t *testing.T) {
	cases := []struct {
		arg  string
		want string
	}{
		{"1776", "I̅DCCLXXVI\n"},
		{"I̅DCCLXXVI", "1776\n"},
		{"XLII", "42\n"},
		{"007", "VII\n"},
	}
	for _, tc := range cases {
		got, err := execute(t, "", tc.arg)
		if err != nil {
			t.Fatalf("vinculum %q: %v", tc.arg, err)
		}
		if got != tc.want {
			t.Errorf("vinculum %q = %q, want %q", tc.arg, got, tc.want)
		}
	}
}

func TestAutoDispatchErrors(t *testing.T) {
	cases := []struct {
		arg  string
		want error
	}{
		{"0", numeral.ErrZeroResult},
		{"", numeral.ErrZeroResult},
		{"XQV", numeral.ErrUnknownGlyph},
		{"IVX", numeral.ErrMalformedNumeral},
		{"99999999999999999999999", numeral.ErrUnsupportedTier},
	}
	for _, tc := range cases {
		out, err := execute(t, "", tc.arg)
		if !errors.Is(err, tc.want) {
			t.Fatalf("vinculum %q error = %v, want %v", tc.arg, err, tc.want)
		}
		if out != "" {
			t.Fatalf("vinculum %q wrote %q on failure", tc.arg, out)
		}
	}
}

func TestAutoDispatchArgCount(t *testing.T) {
	if _, err := execute(t, ""); err == nil {
		t.Fatal("vinculum with no argument should fail")
	}
	if _, err := execute(t, "", "1", "2"); err == nil {
		t.Fatal("vinculum with two arguments should fail")
	}
}

func TestZeroFlag(t *testing.T) {
	got, err := execute(t, "", "--zero", "empty", "0")
	if err != nil {
		t.Fatalf("--zero empty 0: %v", err)
	}
	if got != "\n" {
		t.Fatalf("--zero empty 0 = %q, want empty line", got)
	}
	if _, err := execute(t, "", "--zero", "sometimes", "1"); err == nil {
		t.Fatal("invalid --zero value should fail")
	}
}

func TestEncodeDecodeCommands(t *testing.T) {
	got, err := execute(t, "", "encode", "4", "9", "1000")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got != "IV\nIX\nI̅\n" {
		t.Fatalf("encode = %q", got)
	}

	// decode treats digits as an unknown glyph rather than encoding them.
	if _, err := execute(t, "", "decode", "12"); !errors.Is(err, numeral.ErrUnknownGlyph) {
		t.Fatalf("decode 12 error = %v, want ErrUnknownGlyph", err)
	}

	got, err = execute(t, "", "decode", "M̅", "Q", "X")
	if !errors.Is(err, numeral.ErrUnknownGlyph) {
		t.Fatalf("decode with a bad input error = %v", err)
	}
	if got != "1000000\n10\n" {
		t.Fatalf("decode kept outputs = %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	got, err := execute(t, "", "--format", "json", "encode", "14")
	if err != nil {
		t.Fatalf("encode --format json: %v", err)
	}
	if !strings.Contains(got, `"numeral": "XIV"`) || !strings.Contains(got, `"value": 14`) {
		t.Fatalf("json output = %s", got)
	}
}

func TestExplain(t *testing.T) {
	got, err := execute(t, "", "explain", "1918")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	for _, want := range []string{"I̅", "CI̅", "X", "VIII"} {
		if !strings.Contains(got, want) {
			t.Fatalf("explain 1918 output missing %q:\n%s", want, got)
		}
	}
	if _, err := execute(t, "", "--format", "json", "explain", "XIV"); err != nil {
		t.Fatalf("explain numeral: %v", err)
	}
}

func TestBatchStdin(t *testing.T) {
	got, err := execute(t, "1\n\n  XL  \n2421\n", "--format", "yaml", "batch")
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	for _, want := range []string{"numeral: I\n", "value: 40", "numeral: I̅I̅CDXXI"} {
		if !strings.Contains(got, want) {
			t.Fatalf("batch output missing %q:\n%s", want, got)
		}
	}
}

func TestBatchReportsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	if err := os.WriteFile(path, []byte("5\nQ\n0\n"), 0o600); err != nil {
		t.Fatalf("write inputs: %v", err)
	}
	got, err := execute(t, "", "batch", "--jobs", "2", path)
	if err == nil || !strings.Contains(err.Error(), "2 of 3") {
		t.Fatalf("batch error = %v, want 2 of 3 failures", err)
	}
	if !strings.Contains(got, "V") {
		t.Fatalf("batch output missing the successful row:\n%s", got)
	}
	if _, err := execute(t, "", "batch", "--jobs", "-1"); err == nil {
		t.Fatal("negative --jobs should fail")
	}
}

func TestTable(t *testing.T) {
	got, err := execute(t, "", "table")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(got, "I̅") || !strings.Contains(got, "TIER") {
		t.Fatalf("table output:\n%s", got)
	}
	got, err = execute(t, "", "table", "--symbols")
	if err != nil {
		t.Fatalf("table --symbols: %v", err)
	}
	if !strings.Contains(got, "uint64") {
		t.Fatalf("table --symbols should flag oversized glyphs:\n%s", got)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vinculum.toml")
	data := "[codec]\nzero = \"empty\"\n\n[output]\nformat = \"json\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	got, err := execute(t, "", "--config", path, "0")
	if err != nil {
		t.Fatalf("config zero=empty: %v", err)
	}
	if got != "\n" {
		t.Fatalf("auto dispatch ignores the structured format, got %q", got)
	}
	got, err = execute(t, "", "--config", path, "encode", "3")
	if err != nil || !strings.Contains(got, `"numeral": "III"`) {
		t.Fatalf("encode with json config = %q, %v", got, err)
	}
	// Flags win over the file.
	got, err = execute(t, "", "--config", path, "--format", "pretty", "encode", "3")
	if err != nil || got != "III\n" {
		t.Fatalf("encode with --format pretty = %q, %v", got, err)
	}
	if _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "1"); err == nil {
		t.Fatal("missing explicit config should fail")
	}
}

func TestTraceOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.ndjson")
	if _, err := execute(t, "", "--trace", path, "--trace-level", "debug", "XIV"); err != nil {
		t.Fatalf("traced decode: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if !strings.Contains(string(data), `"numeral"`) {
		t.Fatalf("trace missing the decode span:\n%s", data)
	}
}

func TestVersion(t *testing.T) {
	got, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(got, "vinculum ") {
		t.Fatalf("version = %q", got)
	}
	got, err = execute(t, "", "--format", "json", "version", "--full")
	if err != nil {
		t.Fatalf("version json: %v", err)
	}
	if !strings.Contains(got, `"tool": "vinculum"`) || !strings.Contains(got, `"git_commit": "unknown"`) {
		t.Fatalf("version json = %s", got)
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, numeral.ErrOverflow)
	if !strings.Contains(buf.String(), "error:") || !strings.Contains(buf.String(), "uint64") {
		t.Fatalf("reportError = %q", buf.String())
	}
}

func TestLongHelpHasNoIndentedLines(t *testing.T) {
	root := newRootCmd()
	for _, c := range append(root.Commands(), root) {
		for _, line := range strings.Split(c.Long, "\n") {
			if strings.HasPrefix(line, "\t") {
				t.Errorf("%s help has an indented line %q", c.Name(), line)
			}
		}
	}
}
