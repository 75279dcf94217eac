package htmltools

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeAssetDir builds a small asset tree: root.css, js/app.js.
func makeAssetDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "root.css"), []byte("body{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "js"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "js", "app.js"), []byte("// app"), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestCopyToDir(t *testing.T) {
	srcDir := makeAssetDir(t)
	outDir := filepath.Join(t.TempDir(), "lib")

	dep, err := NewDependency("widgets", "2.1",
		[]Source{FileSource(srcDir), HrefSource("https://cdn.example.com/widgets/")},
		WithStylesheets("root.css"),
	)
	if err != nil {
		t.Fatal(err)
	}

	staged, err := CopyToDir(dep, outDir, true)
	if err != nil {
		t.Fatalf("CopyToDir() unexpected error: %v", err)
	}

	target := filepath.Join(outDir, "widgets-2.1")
	for _, rel := range []string{"root.css", filepath.Join("js", "app.js")} {
		if _, err := os.Stat(filepath.Join(target, rel)); err != nil {
			t.Errorf("staged file %s missing: %v", rel, err)
		}
	}

	idx := fileSourceIndex(staged.Sources)
	if idx < 0 {
		t.Fatal("staged dependency lost its file source")
	}
	loc := staged.Sources[idx].Location
	if !filepath.IsAbs(filepath.FromSlash(loc)) {
		t.Errorf("staged file source %q is not absolute", loc)
	}
	if !strings.HasSuffix(loc, "widgets-2.1") {
		t.Errorf("staged file source %q does not point at the target directory", loc)
	}

	// The href source survives staging.
	found := false
	for _, src := range staged.Sources {
		if src.Kind == SourceHref {
			found = true
		}
	}
	if !found {
		t.Error("staged dependency lost its href source")
	}

	// The input descriptor is untouched.
	if dep.Sources[0].Location != srcDir {
		t.Errorf("CopyToDir() mutated its input: %q", dep.Sources[0].Location)
	}
}

func TestCopyToDirIdempotent(t *testing.T) {
	srcDir := makeAssetDir(t)
	outDir := t.TempDir()

	dep, err := NewDependency("widgets", "2.1", []Source{FileSource(srcDir)})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := CopyToDir(dep, outDir, true); err != nil {
		t.Fatalf("first CopyToDir() error: %v", err)
	}

	// Change the source after staging. The existing target is trusted as
	// up to date, so the second call must not pick the change up.
	if err := os.WriteFile(filepath.Join(srcDir, "root.css"), []byte("body{color:red}"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := CopyToDir(dep, outDir, true); err != nil {
		t.Fatalf("second CopyToDir() error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "widgets-2.1", "root.css"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "body{}" {
		t.Errorf("second CopyToDir() recopied contents: %q", content)
	}
}

func TestCopyToDirNotDiskBased(t *testing.T) {
	dep, err := NewDependency("remote", "1.0",
		[]Source{HrefSource("https://cdn.example.com/remote/")})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("mustWork fails", func(t *testing.T) {
		_, err := CopyToDir(dep, t.TempDir(), true)
		if !errors.Is(err, ErrNotDiskBased) {
			t.Errorf("CopyToDir() error = %v, want ErrNotDiskBased", err)
		}
	})

	t.Run("best effort passes through unchanged", func(t *testing.T) {
		got, err := CopyToDir(dep, t.TempDir(), false)
		if err != nil {
			t.Fatalf("CopyToDir() unexpected error: %v", err)
		}
		if len(got.Sources) != 1 || got.Sources[0] != dep.Sources[0] {
			t.Errorf("CopyToDir() changed a non-disk dependency: %v", got.Sources)
		}
	})
}

func TestCopyToDirInvalidDependency(t *testing.T) {
	_, err := CopyToDir(Dependency{Name: "x"}, t.TempDir(), true)
	if !errors.Is(err, ErrInvalidDependency) {
		t.Errorf("CopyToDir() error = %v, want ErrInvalidDependency", err)
	}
}
