package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/quatkit/internal/config"
	"github.com/Faultbox/quatkit/pkg/quat"
)

func TestParseQuat(t *testing.T) {
	tests := []struct {
		in      string
		want    quat.Quaternion
		wantErr bool
	}{
		{in: "1,2,3,4", want: quat.New(1, 2, 3, 4)},
		{in: " 0.5, -1 ,0,2.25", want: quat.New(0.5, -1, 0, 2.25)},
		{in: "1,2,3", wantErr: true},
		{in: "1,2,3,4,5", wantErr: true},
		{in: "1,a,3,4", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseQuat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseQuat(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseQuat(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseQuat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRunOutput(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
		want string
	}{
		{"mul", "mul", []string{"1,2,3,4", "5,6,7,8"}, "[w = -60, x = 12, y = 30, z = 24]\n"},
		{"mul chain", "mul", []string{"0,1,0,0", "0,0,1,0", "0,0,0,1"}, "[w = -1, x = 0, y = 0, z = 0]\n"},
		{"add", "add", []string{"1,2,3,4", "5,6,7,8"}, "[w = 6, x = 8, y = 10, z = 12]\n"},
		{"conj", "conj", []string{"1,2,3,4"}, "[w = 1, x = -2, y = -3, z = -4]\n"},
		{"neg", "neg", []string{"1,2,3,4"}, "[w = -1, x = -2, y = -3, z = -4]\n"},
		{"inv unit", "inv", []string{"0,1,0,0"}, "[w = 0, x = -1, y = -0, z = -0]\n"},
		{"inv non-unit", "inv", []string{"1,2,3,4"}, "not invertible (not a unit quaternion)\n"},
		{"axis", "axis", []string{"0", "0,0,1,0"}, "[w = 1, x = 0, y = 0, z = 0]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(&out, tt.cmd, tt.args); err != nil {
				t.Fatalf("run %s failed: %v", tt.cmd, err)
			}
			if out.String() != tt.want {
				t.Errorf("run %s %v printed %q, want %q", tt.cmd, tt.args, out.String(), tt.want)
			}
		})
	}
}

// matrixRows strips the bracket glyphs of mat.Formatted and splits each row
// into its fields.
func matrixRows(s string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		rows = append(rows, strings.Fields(strings.Trim(line, "⎡⎢⎣⎤⎥⎦[] ")))
	}
	return rows
}

func TestMatrixOutput(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, "matrix", []string{"1,2,3,4"}); err != nil {
		t.Fatalf("matrix failed: %v", err)
	}

	want := [][]string{
		{"1", "-2", "-3", "-4"},
		{"2", "1", "-4", "3"},
		{"3", "4", "1", "-2"},
		{"4", "-3", "2", "1"},
	}
	rows := matrixRows(out.String())
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d:\n%s", len(want), len(rows), out.String())
	}
	for i := range want {
		if strings.Join(rows[i], " ") != strings.Join(want[i], " ") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}

	out.Reset()
	if err := run(&out, "matrix", []string{"-rotation", "1,0,0,0"}); err != nil {
		t.Fatalf("matrix -rotation failed: %v", err)
	}
	if rows := matrixRows(out.String()); len(rows) != 3 || strings.Join(rows[0], " ") != "1 0 0" {
		t.Errorf("unexpected rotation matrix:\n%s", out.String())
	}

	if err := run(&out, "matrix", []string{"-rotation", "1,2,3,4"}); !errors.Is(err, quat.ErrInvalidRotation) {
		t.Errorf("expected ErrInvalidRotation, got %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, "mul", []string{"1,0,0,0"}); err == nil {
		t.Error("expected mul with one operand to fail")
	}
	if err := run(&out, "add", []string{"1,0,0,0", "bad"}); err == nil {
		t.Error("expected add with a malformed operand to fail")
	}
	if err := run(&out, "rotate", []string{"1,2,3,4", "0,1,0,0"}); !errors.Is(err, quat.ErrInvalidRotation) {
		t.Errorf("expected ErrInvalidRotation, got %v", err)
	}
	if err := run(&out, "frobnicate", nil); err == nil {
		t.Error("expected unknown command to fail")
	}
}

func TestAngleUsesDefaults(t *testing.T) {
	r := "0.7071067811865476,0,0.7071067811865476,0"

	// A coarse grid with a tight delta misses every candidate.
	coarse := config.AngleConfig{Delta: 1e-9, Step: 0.3}
	var out bytes.Buffer
	if err := cmdAngle(&out, []string{r}, coarse); !errors.Is(err, quat.ErrAngleNotFound) {
		t.Errorf("expected ErrAngleNotFound with coarse defaults, got %v", err)
	}

	// Flags override the configured values.
	out.Reset()
	if err := cmdAngle(&out, []string{"-delta", "0.001", "-step", "0.0001", r}, coarse); err != nil {
		t.Fatalf("angle with flag overrides failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "0.78") {
		t.Errorf("expected about pi/4, got %q", out.String())
	}

	out.Reset()
	if err := cmdInfo(&out, []string{r}, coarse); err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if strings.Contains(out.String(), "Angle:") {
		t.Errorf("info should omit the angle when the configured search fails:\n%s", out.String())
	}

	out.Reset()
	if err := cmdInfo(&out, []string{r}, config.Default().Angle); err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if !strings.Contains(out.String(), "Angle:       0.78") {
		t.Errorf("info should report the angle:\n%s", out.String())
	}
}

func TestAngleDefaultsFromConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if got := angleDefaults(); got != config.Default().Angle {
		t.Errorf("expected built-in defaults without a config file, got %+v", got)
	}

	yamlContent := "angle:\n  delta: 0.01\n  step: 0.002\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "quatkit.yaml"), []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	got := angleDefaults()
	if got.Delta != 0.01 || got.Step != 0.002 {
		t.Errorf("expected delta 0.01 and step 0.002 from file, got %+v", got)
	}
}
