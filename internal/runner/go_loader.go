package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Loader executes a project entry file inside an already-scoped context.
// The Runner owns context capture and restoration; the loader only loads
// and runs the unit.
type Loader interface {
	LoadAndRun(entryPath string, searchPath []string) error
}

// GoLoader interprets an entry file with yaegi. Top-level declarations are
// evaluated first; when the unit declares a main function the interpreter
// then invokes it, and a unit without one is simply left loaded. Panics out
// of interpreted code are converted to errors.
type GoLoader struct{}

func (GoLoader) LoadAndRun(entryPath string, searchPath []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("entry unit panicked: %v", r)
		}
	}()

	opts := interp.Options{}
	if len(searchPath) > 0 {
		// Entries are src dirs; yaegi resolves imports under GoPath/src,
		// so the project root (the first entry's parent) is the GoPath.
		opts.GoPath = filepath.Dir(searchPath[0])
	}
	i := interp.New(opts)
	i.Use(stdlib.Symbols)

	if _, err := i.EvalPath(entryPath); err != nil {
		return err
	}
	return nil
}

// classifyLoadError maps a loader failure onto the dispatch taxonomy.
func classifyLoadError(err error) FailureKind {
	if errors.Is(err, fs.ErrNotExist) {
		return FailureMissingResource
	}
	msg := err.Error()
	if strings.Contains(msg, "unable to find source") || strings.Contains(msg, "import") {
		return FailureDependency
	}
	return FailureExecution
}
