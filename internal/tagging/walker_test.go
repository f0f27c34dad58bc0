package tagging

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/handiism/mp3-autotag/internal/report"
	"github.com/spf13/afero"
)

func newFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		if err := afero.WriteFile(fs, f, []byte("audio"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func collect(t *testing.T, w *Walker, root string) ([]string, bool) {
	t.Helper()
	var paths []string
	found, err := w.Walk(root, func(path string) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk(%s): %v", root, err)
	}
	return paths, found
}

func TestWalker_Directory(t *testing.T) {
	fs := newFs(t, "/music/a.mp3", "/music/b.MP3", "/music/c.txt")
	rec := &report.Recorder{}

	paths, found := collect(t, NewWalker(fs, nil, rec.Report), "/music")

	want := []string{"/music/a.mp3", "/music/b.MP3"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
	if !found {
		t.Error("a directory counts as found")
	}
	if len(rec.Events) != 0 {
		t.Errorf("non-matching files inside a directory are ignored silently: %+v", rec.Events)
	}
}

func TestWalker_Recursive(t *testing.T) {
	fs := newFs(t,
		"/music/Portishead/Dummy/01 - Mysterons.mp3",
		"/music/Portishead/Dummy/cover.jpg",
		"/music/Portishead/Third/02 Hunter.mp3",
		"/music/Portishead/notes.mp3.bak",
	)

	paths, _ := collect(t, NewWalker(fs, []string{".mp3"}, nil), "/music")

	want := []string{
		"/music/Portishead/Dummy/01 - Mysterons.mp3",
		"/music/Portishead/Third/02 Hunter.mp3",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestWalker_SingleFile(t *testing.T) {
	fs := newFs(t, "/music/track.Mp3", "/music/readme.txt")
	rec := &report.Recorder{}
	w := NewWalker(fs, nil, rec.Report)

	paths, found := collect(t, w, "/music/track.Mp3")
	if !found || len(paths) != 1 || paths[0] != "/music/track.Mp3" {
		t.Errorf("paths = %v found = %v", paths, found)
	}

	paths, found = collect(t, w, "/music/readme.txt")
	if found || len(paths) != 0 {
		t.Errorf("paths = %v found = %v, want skipped", paths, found)
	}

	paths, found = collect(t, w, "/music/missing.mp3")
	if found || len(paths) != 0 {
		t.Errorf("paths = %v found = %v, want skipped", paths, found)
	}

	want := []string{
		"Skipping unsupported file: /music/readme.txt",
		"Skipping unsupported file: /music/missing.mp3",
	}
	if got := rec.Messages(report.LevelWarning); !reflect.DeepEqual(got, want) {
		t.Errorf("warnings = %v, want %v", got, want)
	}
}

func TestWalker_CustomExtensions(t *testing.T) {
	fs := newFs(t, "/m/a.mp3", "/m/b.mp2")

	paths, _ := collect(t, NewWalker(fs, []string{".mp2", ".mp3"}, nil), "/m")
	if len(paths) != 2 {
		t.Errorf("paths = %v, want both files", paths)
	}
}

func TestWalker_CallbackErrorStops(t *testing.T) {
	fs := newFs(t, "/m/a.mp3", "/m/b.mp3")
	stop := errors.New("stop")

	var calls int
	_, err := NewWalker(fs, nil, nil).Walk("/m", func(string) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("err = %v, want stop", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func symlinkTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "real"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "real", "a.mp3"), []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "other"), 0755); err != nil {
		t.Fatal(err)
	}
	links := map[string]string{
		filepath.Join(dir, "Artist"):             filepath.Join(dir, "real"),
		filepath.Join(dir, "other", "b.mp3"):     filepath.Join(dir, "real", "a.mp3"),
		filepath.Join(dir, "other", "linkeddir"): filepath.Join(dir, "real"),
	}
	for link, target := range links {
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
	}
	return dir
}

func TestWalker_Symlinks(t *testing.T) {
	dir := symlinkTree(t)

	tests := []struct {
		name string
		root string
		want []string
	}{
		{"symlinked directory root", "Artist", []string{filepath.Join("Artist", "a.mp3")}},
		{"symlinked file inside directory", "other", []string{filepath.Join("other", "b.mp3")}},
		{"symlinked file root", filepath.Join("other", "b.mp3"), []string{filepath.Join("other", "b.mp3")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := filepath.Join(dir, tt.root)
			want := make([]string, len(tt.want))
			for i, p := range tt.want {
				want[i] = filepath.Join(dir, p)
			}

			rec := &report.Recorder{}
			paths, found := collect(t, NewWalker(afero.NewOsFs(), nil, rec.Report), root)
			if !found {
				t.Errorf("found = false for %s", root)
			}
			if !reflect.DeepEqual(paths, want) {
				t.Errorf("paths = %v, want %v", paths, want)
			}
			if len(rec.Events) != 0 {
				t.Errorf("unexpected events: %+v", rec.Events)
			}
		})
	}
}
