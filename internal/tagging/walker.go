package tagging

import (
	"fmt"
	"os"
	"path/filepath"

	ioutils "github.com/handiism/mp3-autotag/internal/io"
	"github.com/handiism/mp3-autotag/internal/report"
	"github.com/spf13/afero"
)

// Walker finds audio files below a path.
type Walker struct {
	fs         afero.Fs
	extensions []string
	onProgress report.Func
}

// NewWalker returns a Walker matching files with one of extensions
// (".mp3" when empty), compared case-insensitively.
func NewWalker(fs afero.Fs, extensions []string, onProgress report.Func) *Walker {
	if len(extensions) == 0 {
		extensions = []string{".mp3"}
	}
	return &Walker{
		fs:         fs,
		extensions: extensions,
		onProgress: onProgress,
	}
}

// Walk calls fn for every matching file at or below root, in lexical order.
//
// A directory is visited recursively and non-matching files inside it are
// ignored. A symlinked root is followed and the files below it are reported
// under root. Symlinks to files are followed, symlinks to directories below
// root are not. A root that is neither a directory nor a matching file is
// reported as skipped, and Walk returns false. An error returned by fn
// stops the walk and is returned.
func (w *Walker) Walk(root string, fn func(path string) error) (bool, error) {
	info, err := w.fs.Stat(root)
	if err != nil {
		w.skip(root)
		return false, nil
	}

	if !info.IsDir() {
		if !w.matches(root, info) {
			w.skip(root)
			return false, nil
		}
		return true, fn(root)
	}

	target, err := w.resolve(root)
	if err != nil {
		w.skip(root)
		return false, nil
	}

	err = afero.Walk(w.fs, target, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.onProgress.Send(report.LevelWarning, fmt.Sprintf("Cannot read %s: %v", path, err))
			return nil
		}
		if info.IsDir() || !w.matches(path, info) {
			return nil
		}
		if target != root {
			rel, err := filepath.Rel(target, path)
			if err == nil {
				path = filepath.Join(root, rel)
			}
		}
		return fn(path)
	})
	return true, err
}

// maxLinkHops bounds symlink resolution of a walk root.
const maxLinkHops = 40

// resolve follows root while it is a symlink. Filesystems without symlink
// support return root unchanged.
func (w *Walker) resolve(root string) (string, error) {
	lstater, ok := w.fs.(afero.Lstater)
	if !ok {
		return root, nil
	}
	reader, ok := w.fs.(afero.LinkReader)
	if !ok {
		return root, nil
	}

	path := root
	for i := 0; i < maxLinkHops; i++ {
		info, lstatCalled, err := lstater.LstatIfPossible(path)
		if err != nil {
			return "", err
		}
		if !lstatCalled || info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		link, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		path = link
	}
	return "", fmt.Errorf("too many links: %s", root)
}

func (w *Walker) matches(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink != 0 {
		linked, err := w.fs.Stat(path)
		if err != nil {
			return false
		}
		info = linked
	}
	return info.Mode().IsRegular() && ioutils.HasExtension(path, w.extensions)
}

func (w *Walker) skip(path string) {
	w.onProgress.Send(report.LevelWarning, fmt.Sprintf("Skipping unsupported file: %s", path))
}
