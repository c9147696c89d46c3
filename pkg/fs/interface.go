package fs

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system primitives used by wre-commit.
// Every failing operation returns a *FileError.
type FS interface {
	// Exists checks if a file exists at the given path, following symlinks.
	Exists(path string) (bool, error)

	// Lexists checks if a file or symlink exists at the given path, without following symlinks.
	Lexists(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// Remove deletes a file.
	Remove(path string) error

	// Rename renames a file.
	Rename(from, to string) error

	// Symlink creates a symlink at path pointing to target.
	Symlink(target, path string) error

	// Chdir changes the current working directory.
	Chdir(path string) error

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// Glob finds files matching the pattern, sorted.
	Glob(pattern string) ([]string, error)

	// WriteTempFile creates a new temporary file in dir with the given name
	// prefix and suffix, writes data to it and returns its path.
	WriteTempFile(dir, prefix, suffix string, data []byte) (string, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
