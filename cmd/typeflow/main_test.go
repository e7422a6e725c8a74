package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/typeflow/csvinput"
	"github.com/wippyai/typeflow/typeinfo"
)

func execute(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return stdout.String(), stderr.String()
}

func TestEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "in.csv")
	bin := filepath.Join(dir, "out.bin")
	data := "1,alpha,x,1.5\n2,\"be,ta\",y,2.5\n\n3,gamma,z,3.5\n"
	if err := os.WriteFile(csv, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	types := "int64,string,skip,double"

	out, errOut := execute(t, "parse", csv, "--types", types)
	if !strings.Contains(out, "be,ta") || !strings.Contains(errOut, "3 records") {
		t.Errorf("parse output:\n%s\n%s", out, errOut)
	}

	_, errOut = execute(t, "encode", csv, "--types", types, "-o", bin)
	if !strings.Contains(errOut, "wrote") {
		t.Errorf("encode output: %s", errOut)
	}

	out, _ = execute(t, "decode", bin, "--types", types)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("decode printed %d lines:\n%s", len(lines), out)
	}
	if lines[2] != "2\tbe,ta\t2.5" {
		t.Errorf("decoded record %q", lines[2])
	}
}

func TestHeaders(t *testing.T) {
	f, err := csvinput.NewFormat([]typeinfo.Tag{typeinfo.None, typeinfo.Int32, typeinfo.Char})
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(headers(f.Projection()), ",")
	if got != "1:int32,2:char" {
		t.Errorf("headers = %q", got)
	}
	if c := cells([]any{int32(1), 'x'}); c[1] != "x" {
		t.Errorf("cells = %v", c)
	}
}

func TestBrowseFilter(t *testing.T) {
	f, _ := csvinput.NewFormat([]typeinfo.Tag{typeinfo.String})
	m := newBrowseModel("mem", f, 10)
	m.Update(recordsLoadedMsg{records: [][]string{{"apple"}, {"banana"}, {"cherry"}}})
	if len(m.visible) != 3 {
		t.Fatalf("visible = %v", m.visible)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if m.state != stateFilter {
		t.Fatal("slash should focus the filter")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("an")})
	if len(m.visible) != 1 || m.records[m.visible[0]][0] != "banana" {
		t.Errorf("filtered = %v", m.visible)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateDetail || !strings.Contains(m.View(), "banana") {
		t.Errorf("detail view state %v:\n%s", m.state, m.View())
	}
}

func TestDecodeTruncatedRecord(t *testing.T) {
	// one int64 field and nothing of the string that follows it
	bin := filepath.Join(t.TempDir(), "short.bin")
	if err := os.WriteFile(bin, []byte{0, 0, 0, 0, 0, 0, 0, 1}, 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"decode", bin, "--types", "int64,string"})
	err := rootCmd.Execute()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestStyled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tests := []struct {
		name string
		w    io.Writer
	}{
		{"buffer", &bytes.Buffer{}},
		{"regular file", f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if styled(tt.w) {
				t.Error("only terminals are styled")
			}
		})
	}

	csv := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(csv, []byte("1,a\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, _ := execute(t, "parse", csv, "--types", "int32,string")
	if strings.Contains(out, "\x1b[") {
		t.Errorf("redirected output has escape codes: %q", out)
	}
}
