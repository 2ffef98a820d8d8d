//
//  Copyright 2026 The PortFS authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package memfs

import (
	"io/fs"
	"os"
	"time"

	"github.com/portfs/portfs"
)

// Chdir changes the current working directory to the named directory.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Chdir(dir string) error {
	const op = "chdir"

	_, child, _, err := vfs.searchNode(dir, slmEval)
	if err != portfs.ErrFileExists {
		return &fs.PathError{Op: op, Path: dir, Err: err}
	}

	if _, ok := child.(*dirNode); !ok {
		return &fs.PathError{Op: op, Path: dir, Err: portfs.ErrNotADirectory}
	}

	absDir := dir
	if !portfs.IsAbs(vfs, absDir) {
		absDir = vfs.join(vfs.CurDir(), dir)
	}

	vfs.SetCurDir(portfs.Clean(vfs, absDir))

	return nil
}

// CurDir returns the current directory.
func (vfs *MemFS) CurDir() string {
	vfs.mu.RLock()
	dir := vfs.curDir
	vfs.mu.RUnlock()

	return dir
}

// Getwd returns a rooted path name corresponding to the
// current directory.
func (vfs *MemFS) Getwd() (dir string, err error) {
	return vfs.CurDir(), nil
}

// Lstat returns a FileInfo describing the named file.
// If the file is a symbolic link, the returned FileInfo
// describes the symbolic link. Lstat makes no attempt to follow the link.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Lstat(path string) (fs.FileInfo, error) {
	const op = "lstat"

	_, child, pi, err := vfs.searchNode(path, slmLstat)
	if err != portfs.ErrFileExists || child == nil {
		return nil, &fs.PathError{Op: op, Path: path, Err: err}
	}

	return child.fillStatFrom(statName(vfs, path, pi)), nil
}

// Mkdir creates a new directory with the specified name and permission
// bits (before umask).
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Mkdir(name string, perm fs.FileMode) error {
	const op = "mkdir"

	if name == "" {
		return &fs.PathError{Op: op, Path: "", Err: portfs.ErrNoSuchFileOrDir}
	}

	parent, _, pi, err := vfs.searchNode(name, slmEval)
	if err == portfs.ErrFileExists {
		return &fs.PathError{Op: op, Path: name, Err: portfs.ErrFileExists}
	}

	if err != portfs.ErrNoSuchFileOrDir || !pi.IsLast() {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	parent.mu.Lock()
	defer parent.mu.Unlock()

	part := pi.Part()
	if parent.children[part] != nil {
		return &fs.PathError{Op: op, Path: name, Err: portfs.ErrFileExists}
	}

	_ = vfs.createDir(parent, part, perm)

	return nil
}

// MkdirAll creates a directory named path,
// along with any necessary parents, and returns nil,
// or else returns an error.
// The permission bits perm (before umask) are used for all
// directories that MkdirAll creates.
// If path is already a directory, MkdirAll does nothing
// and returns nil.
func (vfs *MemFS) MkdirAll(path string, perm fs.FileMode) error {
	const op = "mkdir"

	parent, child, pi, err := vfs.searchNode(path, slmEval)

	switch child.(type) {
	case *dirNode:
		if err != portfs.ErrFileExists {
			return &fs.PathError{Op: op, Path: path, Err: err}
		}

		return nil
	case *fileNode:
		return &fs.PathError{Op: op, Path: pi.LeftPart(), Err: portfs.ErrNotADirectory}
	}

	if err != portfs.ErrNoSuchFileOrDir {
		return &fs.PathError{Op: op, Path: path, Err: err}
	}

	parent.mu.Lock()
	defer parent.mu.Unlock()

	dn := parent

	for {
		part := pi.Part()
		if dn.children[part] == nil {
			dn = vfs.createDir(dn, part, perm)
		}

		if !pi.Next() {
			break
		}
	}

	return nil
}

// ReadDir reads the named directory,
// returning all its directory entries sorted by filename.
// If an error occurs reading the directory,
// ReadDir returns the entries it was able to read before the error,
// along with the error.
func (vfs *MemFS) ReadDir(name string) ([]fs.DirEntry, error) {
	const op = "open"

	_, child, _, err := vfs.searchNode(name, slmEval)
	if err != portfs.ErrFileExists || child == nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	c, ok := child.(*dirNode)
	if !ok {
		return nil, &fs.PathError{Op: op, Path: name, Err: portfs.ErrNotADirectory}
	}

	c.mu.RLock()
	entries := c.entries()
	c.mu.RUnlock()

	return entries, nil
}

// ReadFile reads the named file and returns the contents.
// A successful call returns err == nil, not err == EOF.
func (vfs *MemFS) ReadFile(name string) ([]byte, error) {
	const op = "open"

	_, child, _, err := vfs.searchNode(name, slmEval)
	if err != portfs.ErrFileExists || child == nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	c, ok := child.(*fileNode)
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: portfs.ErrIsADirectory}
	}

	c.mu.RLock()
	data := make([]byte, len(c.data))
	copy(data, c.data)
	c.mu.RUnlock()

	return data, nil
}

// Readlink returns the destination of the named symbolic link.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Readlink(name string) (string, error) {
	const op = "readlink"

	_, child, _, err := vfs.searchNode(name, slmLstat)
	if err != portfs.ErrFileExists || child == nil {
		return "", &fs.PathError{Op: op, Path: name, Err: err}
	}

	c, ok := child.(*symlinkNode)
	if !ok {
		return "", &fs.PathError{Op: op, Path: name, Err: portfs.ErrInvalidArgument}
	}

	return c.link, nil
}

// Remove removes the named file or (empty) directory.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Remove(name string) error {
	const op = "remove"

	parent, child, pi, err := vfs.searchNode(name, slmLstat)
	if err != portfs.ErrFileExists || child == nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	if c, ok := child.(*dirNode); ok {
		c.mu.RLock()
		l := len(c.children)
		c.mu.RUnlock()

		if l != 0 {
			return &fs.PathError{Op: op, Path: name, Err: portfs.ErrDirNotEmpty}
		}
	}

	// A path ending in a dot, dot-dot or separator leaves no part to unlink.
	part := pi.Part()
	if part == "" {
		return &fs.PathError{Op: op, Path: name, Err: portfs.ErrInvalidArgument}
	}

	parent.mu.Lock()
	parent.removeChild(part)
	parent.mu.Unlock()

	return nil
}

// SetCurDir sets the current directory.
func (vfs *MemFS) SetCurDir(dir string) {
	vfs.mu.Lock()
	vfs.curDir = dir
	vfs.mu.Unlock()
}

// Stat returns a FileInfo describing the named file.
// Stat follows symbolic links.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Stat(path string) (fs.FileInfo, error) {
	const op = "stat"

	_, child, pi, err := vfs.searchNode(path, slmEval)
	if err != portfs.ErrFileExists || child == nil {
		return nil, &fs.PathError{Op: op, Path: path, Err: err}
	}

	return child.fillStatFrom(statName(vfs, path, pi)), nil
}

// Symlink creates newname as a symbolic link to oldname.
// Symlink does not require oldname to exist.
// If there is an error, it will be of type *LinkError.
func (vfs *MemFS) Symlink(oldname, newname string) error {
	const op = "symlink"

	parent, _, pi, err := vfs.searchNode(newname, slmLstat)
	if err == portfs.ErrFileExists {
		return &os.LinkError{Op: op, Old: oldname, New: newname, Err: portfs.ErrFileExists}
	}

	if err != portfs.ErrNoSuchFileOrDir || !pi.IsLast() {
		return &os.LinkError{Op: op, Old: oldname, New: newname, Err: err}
	}

	parent.mu.Lock()
	_ = vfs.createSymlink(parent, pi.Part(), oldname)
	parent.mu.Unlock()

	return nil
}

// WriteFile writes data to the named file, creating it if necessary.
// If the file does not exist, WriteFile creates it with permissions perm (before umask);
// otherwise WriteFile truncates it before writing, without changing permissions.
func (vfs *MemFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	const op = "open"

	parent, child, pi, err := vfs.searchNode(name, slmEval)

	switch {
	case err == portfs.ErrFileExists:
		c, ok := child.(*fileNode)
		if !ok {
			return &fs.PathError{Op: op, Path: name, Err: portfs.ErrIsADirectory}
		}

		c.mu.Lock()
		c.data = append(c.data[:0], data...)
		c.mtime = time.Now().UnixNano()
		c.mu.Unlock()

	case err == portfs.ErrNoSuchFileOrDir && pi.IsLast():
		parent.mu.Lock()

		c := vfs.createFile(parent, pi.Part(), perm)
		c.data = append([]byte(nil), data...)

		parent.mu.Unlock()

	default:
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	return nil
}
