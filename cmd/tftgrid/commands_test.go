package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/store"
)

const testLayout = `name = "demo"

[display]
width = 100
height = 60

[grid]
width = 100
height = 60
rows = 1
columns = %COLUMNS%

[[cells]]
row = 0
column = 0
text = "hi"

[preview]
scale_x = 10
scale_y = 20

[snapshots]
backend = "%BACKEND%"
dir = "snaps"
`

// writeLayout writes a grid.toml into a temp dir and returns its path.
func writeLayout(t *testing.T, dir string, columns, backend string) string {
	t.Helper()
	content := strings.NewReplacer("%COLUMNS%", columns, "%BACKEND%", backend).Replace(testLayout)
	path := filepath.Join(dir, "grid.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := rootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, "init", dir)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Created") || !strings.Contains(out, "grid.toml") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "grid.toml")); err != nil {
		t.Errorf("grid.toml not created: %v", err)
	}

	out, _, err = run(t, "init", dir)
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out, "nothing to create") {
		t.Errorf("second init output:\n%s", out)
	}
}

func TestInitCmd_TemplateInspects(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := run(t, "init", dir); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "inspect", "--strict", "--config", filepath.Join(dir, "grid.toml"))
	if err != nil {
		t.Fatalf("inspect of scaffolded layout: %v", err)
	}
	if !strings.Contains(out, "TFT") {
		t.Errorf("inspect output missing header cell text:\n%s", out)
	}
}

func TestRenderCmd_Term(t *testing.T) {
	path := writeLayout(t, t.TempDir(), "2", "jsonl")

	out, _, err := run(t, "render", "--term", "--plain", "--config", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"┌", "┘", "hi"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCmd_PNG(t *testing.T) {
	dir := t.TempDir()
	path := writeLayout(t, dir, "2", "jsonl")
	pngPath := filepath.Join(dir, "out.png")

	out, _, err := run(t, "render", "--out", pngPath, "--config", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Wrote") {
		t.Errorf("unexpected output: %s", out)
	}

	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 60 {
		t.Errorf("png size = %dx%d, want 100x60", b.Dx(), b.Dy())
	}
}

func TestRenderCmd_RequiresTarget(t *testing.T) {
	path := writeLayout(t, t.TempDir(), "2", "jsonl")
	if _, _, err := run(t, "render", "--config", path); err == nil {
		t.Error("render without --out or --term should fail")
	}
}

func TestInspectCmd(t *testing.T) {
	path := writeLayout(t, t.TempDir(), "2", "jsonl")

	out, _, err := run(t, "inspect", "--config", path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"Layout", "demo", "Columns", "Rows", "Cells", "auto", "50x60 @ (0,0)", "50x60 @ (50,0)", "hi"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warnings") {
		t.Errorf("clean layout reported warnings:\n%s", out)
	}
}

func TestInspectCmd_Strict(t *testing.T) {
	dir := t.TempDir()
	path := writeLayout(t, dir, "2", "jsonl")
	overflow := "\n[[grid.column]]\nindex = 0\nwidth = 80\n\n[[grid.column]]\nindex = 1\nwidth = 80\n"
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(overflow); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out, _, err := run(t, "inspect", "--config", path)
	if err != nil {
		t.Fatalf("inspect without --strict: %v", err)
	}
	if !strings.Contains(out, "Warnings") {
		t.Errorf("overflow not reported:\n%s", out)
	}

	if _, _, err := run(t, "inspect", "--strict", "--config", path); err == nil {
		t.Error("--strict should fail on warnings")
	}
}

func TestInspectCmd_InvalidConfig(t *testing.T) {
	path := writeLayout(t, t.TempDir(), "0", "jsonl")
	_, _, err := run(t, "inspect", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "grid.columns") {
		t.Errorf("err = %v, want grid.columns validation error", err)
	}
}

func TestSnapshotCmds(t *testing.T) {
	for _, backend := range []string{store.BackendJSONL, store.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			path := writeLayout(t, dir, "2", backend)

			out, _, err := run(t, "snapshot", "list", "--config", path)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if !strings.Contains(out, "No snapshots") {
				t.Errorf("empty list output:\n%s", out)
			}

			out, _, err = run(t, "snapshot", "save", "--config", path)
			if err != nil {
				t.Fatalf("save: %v", err)
			}
			if !strings.Contains(out, "Saved snapshot 1 (demo, 2 cells)") {
				t.Errorf("save output:\n%s", out)
			}

			out, _, err = run(t, "snapshot", "list", "--config", path)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if !strings.Contains(out, "demo") || !strings.Contains(out, "1x2") {
				t.Errorf("list output:\n%s", out)
			}

			out, _, err = run(t, "snapshot", "diff", "--config", path)
			if err != nil {
				t.Fatalf("diff: %v", err)
			}
			if !strings.Contains(out, "No changes") {
				t.Errorf("diff of unchanged layout:\n%s", out)
			}

			writeLayout(t, dir, "4", backend)
			out, _, err = run(t, "snapshot", "diff", "1", "--config", path)
			if err != nil {
				t.Fatalf("diff 1: %v", err)
			}
			if !strings.Contains(out, "columns count: 2 -> 4") {
				t.Errorf("diff output missing column count change:\n%s", out)
			}

			if _, err := os.Stat(filepath.Join(dir, "snaps")); err != nil {
				t.Errorf("snapshot dir not created next to grid.toml: %v", err)
			}
		})
	}
}

func TestSnapshotDiff_Errors(t *testing.T) {
	path := writeLayout(t, t.TempDir(), "2", "jsonl")

	if _, _, err := run(t, "snapshot", "diff", "--config", path); err == nil {
		t.Error("diff with no snapshots should fail")
	}
	if _, _, err := run(t, "snapshot", "diff", "abc", "--config", path); err == nil {
		t.Error("diff with a non-numeric id should fail")
	}
	if _, _, err := run(t, "snapshot", "diff", "42", "--config", path); err == nil {
		t.Error("diff with an unknown id should fail")
	}
}

func TestFormatSnapshotList_Empty(t *testing.T) {
	if got := formatSnapshotList(nil); !strings.Contains(got, "No snapshots") {
		t.Errorf("formatSnapshotList(nil) = %q", got)
	}
}

func TestFormatChanges(t *testing.T) {
	base := store.Snapshot{ID: 3, Name: "demo"}
	got := formatChanges(base, []store.Change{{Target: "cell 0,0", Field: "fill", Old: "0x0000", New: "0xFFFF"}})
	for _, want := range []string{"snapshot 3", "cell 0,0 fill: 0x0000 -> 0xFFFF", "1 change(s)"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatChanges missing %q:\n%s", want, got)
		}
	}
}

func TestRootCmd_Version(t *testing.T) {
	out, _, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("--version output = %q", out)
	}
}
