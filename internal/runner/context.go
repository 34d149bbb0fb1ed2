package runner

import "os"

// ExecutionContext carries the mutable state a script run temporarily
// alters: the working directory and the interpreter search path. Making it
// an explicit value (rather than reaching for the process state directly)
// lets tests verify the scoped-acquisition/guaranteed-restore discipline
// with a fake, with no filesystem side effects.
type ExecutionContext interface {
	Workdir() (string, error)
	SetWorkdir(dir string) error
	SearchPath() []string
	SetSearchPath(entries []string)
}

// OSContext is the real execution context: the process working directory
// plus the GOPATH-style entries handed to the interpreter.
type OSContext struct {
	path []string
}

// NewOSContext returns a context with an empty search path.
func NewOSContext() *OSContext {
	return &OSContext{}
}

func (c *OSContext) Workdir() (string, error) {
	return os.Getwd()
}

func (c *OSContext) SetWorkdir(dir string) error {
	return os.Chdir(dir)
}

func (c *OSContext) SearchPath() []string {
	return append([]string(nil), c.path...)
}

func (c *OSContext) SetSearchPath(entries []string) {
	c.path = append([]string(nil), entries...)
}
