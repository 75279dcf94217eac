package htmltools

import (
	"errors"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	both := Dependency{
		Name:    "jquery",
		Version: "3.7.1",
		Sources: []Source{
			FileSource("/opt/assets/jquery"),
			HrefSource("https://code.jquery.com/"),
		},
	}

	tests := []struct {
		name     string
		dep      Dependency
		prefs    []SourceKind
		wantKind SourceKind
		wantLoc  string
		wantErr  error
	}{
		{
			name:     "default preference picks href",
			dep:      both,
			prefs:    nil,
			wantKind: SourceHref,
			wantLoc:  "https://code.jquery.com",
		},
		{
			name:     "href before file picks href",
			dep:      both,
			prefs:    []SourceKind{SourceHref, SourceFile},
			wantKind: SourceHref,
			wantLoc:  "https://code.jquery.com",
		},
		{
			name:     "reversed preference picks file",
			dep:      both,
			prefs:    []SourceKind{SourceFile, SourceHref},
			wantKind: SourceFile,
			wantLoc:  "/opt/assets/jquery",
		},
		{
			name: "duplicate kind: first entry wins",
			dep: Dependency{
				Name:    "x",
				Version: "1.0",
				Sources: []Source{FileSource("/first"), FileSource("/second")},
			},
			prefs:    []SourceKind{SourceFile},
			wantKind: SourceFile,
			wantLoc:  "/first",
		},
		{
			name: "no preferred kind present fails",
			dep: Dependency{
				Name:    "x",
				Version: "1.0",
				Sources: []Source{FileSource("/opt/assets/x")},
			},
			prefs:   []SourceKind{SourceHref},
			wantErr: ErrNoUsableSource,
		},
		{
			name:    "empty sources fails validation",
			dep:     Dependency{Name: "x", Version: "1.0"},
			prefs:   nil,
			wantErr: ErrInvalidDependency,
		},
		{
			name: "single trailing slash is stripped",
			dep: Dependency{
				Name:    "x",
				Version: "1.0",
				Sources: []Source{HrefSource("http://x.com/a/")},
			},
			prefs:    nil,
			wantKind: SourceHref,
			wantLoc:  "http://x.com/a",
		},
		{
			name: "location without trailing slash unchanged",
			dep: Dependency{
				Name:    "x",
				Version: "1.0",
				Sources: []Source{HrefSource("http://x.com/a")},
			},
			prefs:    nil,
			wantKind: SourceHref,
			wantLoc:  "http://x.com/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Resolve(tt.dep, tt.prefs...)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if src.Kind != tt.wantKind {
				t.Errorf("Resolve() kind = %q, want %q", src.Kind, tt.wantKind)
			}
			if src.Location != tt.wantLoc {
				t.Errorf("Resolve() location = %q, want %q", src.Location, tt.wantLoc)
			}
		})
	}
}

func TestResolveErrorIdentifiesDependency(t *testing.T) {
	dep := Dependency{
		Name:    "jquery",
		Version: "3.7.1",
		Sources: []Source{FileSource("/opt/assets/jquery")},
	}

	_, err := Resolve(dep, SourceHref)
	if !errors.Is(err, ErrNoUsableSource) {
		t.Fatalf("Resolve() error = %v, want ErrNoUsableSource", err)
	}
	for _, want := range []string{"jquery", "3.7.1"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Resolve() error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestStripTrailingSlashIdempotent(t *testing.T) {
	once := stripTrailingSlash("foo/bar/")
	twice := stripTrailingSlash(once)
	if once != "foo/bar" || twice != once {
		t.Errorf("stripTrailingSlash not idempotent: once %q, twice %q", once, twice)
	}
}
