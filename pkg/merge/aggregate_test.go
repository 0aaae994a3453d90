package merge

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// denyFs fails to open the listed paths with a permission error.
type denyFs struct {
	afero.Fs
	denied map[string]bool
}

func (d denyFs) Open(name string) (afero.File, error) {
	if d.denied[name] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Open(name)
}

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestAggregatorMerge(t *testing.T) {
	fs := exampleTree(t)
	a := NewAggregator(fs, DefaultFormat(), nil, nil)

	var out bytes.Buffer
	summary, err := a.Merge(&out, []string{"/project/a.jsx", "/project/b.js", "/project/sub/c.JSX"})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	want := "=== FILE: /project/a.jsx ===\n" +
		"A" +
		"\n--- END OF FILE ---\n\n" +
		"=== FILE: /project/b.js ===\n" +
		"B" +
		"\n--- END OF FILE ---\n\n" +
		"=== FILE: /project/sub/c.JSX ===\n" +
		"C" +
		"\n--- END OF FILE ---\n\n" +
		"\n=== END OF MERGE (Total files: 3) ===\n"
	if out.String() != want {
		t.Errorf("Merge output mismatch\ngot:\n%q\nwant:\n%q", out.String(), want)
	}
	if summary.Total != 3 || summary.Failed != 0 {
		t.Errorf("summary = %+v; want Total 3, Failed 0", summary)
	}
}

func TestAggregatorMergeEmpty(t *testing.T) {
	a := NewAggregator(afero.NewMemMapFs(), DefaultFormat(), nil, nil)

	var out bytes.Buffer
	if _, err := a.Merge(&out, nil); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if want := "\n=== END OF MERGE (Total files: 0) ===\n"; out.String() != want {
		t.Errorf("Merge output = %q; want %q", out.String(), want)
	}
}

func TestAggregatorReplacesInvalidUTF8(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, map[string]string{
		"/p/bad.js":  "const s = \"\xff\xfe\";\n",
		"/p/good.js": "ok",
	})
	a := NewAggregator(fs, DefaultFormat(), nil, nil)

	var out bytes.Buffer
	summary, err := a.Merge(&out, []string{"/p/bad.js", "/p/good.js"})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if summary.Failed != 0 {
		t.Errorf("Failed = %d; want 0", summary.Failed)
	}
	if !strings.Contains(out.String(), "const s = \"��\";\n") {
		t.Errorf("invalid bytes were not replaced:\n%q", out.String())
	}
	if !strings.Contains(out.String(), "=== FILE: /p/good.js ===\nok") {
		t.Errorf("file after invalid one was not merged:\n%q", out.String())
	}
}

func TestAggregatorUnreadableFileContinues(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeTree(t, mem, map[string]string{
		"/p/a.js": "first",
		"/p/b.js": "secret",
		"/p/c.js": "third",
	})
	fs := denyFs{Fs: mem, denied: map[string]bool{"/p/b.js": true}}
	a := NewAggregator(fs, DefaultFormat(), nil, nil)

	var out bytes.Buffer
	summary, err := a.Merge(&out, []string{"/p/a.js", "/p/b.js", "/p/c.js"})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if summary.Total != 3 || summary.Failed != 1 {
		t.Errorf("summary = %+v; want Total 3, Failed 1", summary)
	}

	got := out.String()
	placeholder := "=== FILE: /p/b.js ===\n/* ERROR READING FILE: open /p/b.js: permission denied */\n\n--- END OF FILE ---\n\n"
	if !strings.Contains(got, placeholder) {
		t.Errorf("missing placeholder entry in:\n%q", got)
	}
	if strings.Contains(got, "secret") {
		t.Error("denied file content leaked into output")
	}
	if !strings.Contains(got, "=== FILE: /p/c.js ===\nthird") {
		t.Errorf("file after unreadable one was not merged:\n%q", got)
	}
	if !strings.HasSuffix(got, "(Total files: 3) ===\n") {
		t.Errorf("footer does not count the unreadable file:\n%q", got)
	}
}

func TestAggregatorProgress(t *testing.T) {
	fs := exampleTree(t)
	var progress bytes.Buffer
	a := NewAggregator(fs, DefaultFormat(), &progress, nil)

	var out bytes.Buffer
	if _, err := a.Merge(&out, []string{"/project/a.jsx", "/project/b.js"}); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	want := "[1/2] merged: /project/a.jsx\n[2/2] merged: /project/b.js\n"
	if progress.String() != want {
		t.Errorf("progress = %q; want %q", progress.String(), want)
	}

	var quiet bytes.Buffer
	if _, err := NewAggregator(fs, DefaultFormat(), nil, nil).Merge(&quiet, []string{"/project/a.jsx", "/project/b.js"}); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if quiet.String() != out.String() {
		t.Error("progress reporting changed the merged output")
	}
}

func TestAggregatorWriteFailure(t *testing.T) {
	a := NewAggregator(exampleTree(t), DefaultFormat(), nil, nil)
	if _, err := a.Merge(failWriter{}, []string{"/project/a.jsx"}); err == nil {
		t.Error("Merge succeeded on a failing writer")
	}
}
