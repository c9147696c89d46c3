package dispatch

// Request holds everything a dispatch needs to know about its caller. It is
// built once at startup so that the dispatcher never reads the process
// environment or working directory itself.
type Request struct {
	// ProgramName is the name wre-commit was invoked as. When called by git
	// it is the hook type.
	ProgramName string
	// Opts are the options given before the terminator.
	Opts []string
	// Args are the positional arguments, starting with the terminator.
	Args []string
	// Command is the first option, if any.
	Command string
	// CalledByGit is set when wre-commit runs as a git hook.
	CalledByGit bool
	// WorkDir is the working directory at startup.
	WorkDir string
	// Terminal is set when stdin is attached to a terminal.
	Terminal bool
	// RunOnce stops the dispatch after the first invocation.
	RunOnce bool
}
