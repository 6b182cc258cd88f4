package cmd

import (
	"io/fs"
	"os"
)

const fileMode = 0o644

// FS is the filesystem surface the commands need: reading files and
// rewriting them in place. The binary uses the os-backed implementation;
// tests substitute an in-memory one.
type FS interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}
