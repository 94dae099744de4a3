package git

import (
	"os"
	"sync"
)

// Probe answers repository questions for the current run
type Probe interface {
	// IsRepository reports whether the working directory is inside a repository
	IsRepository() bool
	// CurrentBranch returns the checked out branch, or ErrNotOnBranch when HEAD is detached
	CurrentBranch() (string, error)
}

// WorkDir probes the repository containing a directory. The repository is opened once.
type WorkDir struct {
	dir string

	once sync.Once
	repo *Repository
	err  error
}

// NewWorkDir creates a probe for dir. An empty dir means the process working directory.
func NewWorkDir(dir string) *WorkDir {
	return &WorkDir{dir: dir}
}

func (w *WorkDir) open() (*Repository, error) {
	w.once.Do(func() {
		dir := w.dir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				w.err = err
				return
			}
			dir = wd
		}
		w.repo, w.err = OpenRepository(dir)
	})
	return w.repo, w.err
}

// IsRepository reports whether the directory is inside a repository
func (w *WorkDir) IsRepository() bool {
	_, err := w.open()
	return err == nil
}

// CurrentBranch returns the branch HEAD points at
func (w *WorkDir) CurrentBranch() (string, error) {
	repo, err := w.open()
	if err != nil {
		return "", err
	}
	return repo.GetCurrentBranch()
}
