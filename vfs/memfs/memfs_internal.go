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
	"sort"
	"time"

	"github.com/portfs/portfs"
)

// slCountMax is the maximum number of symbolic links in a path.
const slCountMax = 64

// searchNode searches a node from the root of the file system
// where path is the absolute or relative path of the node
// and slm the behavior of searchNode relatively to symlinks.
// It returns :
//
//	parent, the parent directory of the node if found, the last found directory otherwise
//	child, the node corresponding to the path or nil if not found
//	pi, the path iterator positioned on the last processed segment
//	err, one of the following errors :
//	  ErrFileExists when the node is found
//	  ErrNoSuchFileOrDir when the node is not found
//	  ErrNotADirectory when a file node is found while the path segmentation is not finished
//	  ErrTooManySymlinks when more than slCountMax symbolic link resolutions have been performed
//
// Dot and dot-dot segments are interpreted during the search, after
// symbolic link substitution, so a dot-dot following a symbolic link
// backs out of the link target and not of the link itself.
func (vfs *MemFS) searchNode(path string, slm slMode) (parent *dirNode, child node, pi *portfs.PathIterator[*MemFS], err error) {
	absPath := path
	if !portfs.IsAbs(vfs, absPath) {
		absPath = vfs.join(vfs.CurDir(), path)
	}

	rootNode := vfs.rootNode
	parent = rootNode

	// parents is the stack of traversed directories, used to back out of
	// a directory when a dot-dot segment is found.
	var parents []*dirNode

	slCount := 0
	pi = portfs.NewPathIterator(vfs, absPath)
	child = rootNode
	err = portfs.ErrFileExists

	for pi.Next() {
		part := pi.Part()
		if part == "" || part == "." {
			child = parent

			continue
		}

		if part == ".." {
			// Clamped at the root directory.
			if len(parents) > 0 {
				parent = parents[len(parents)-1]
				parents = parents[:len(parents)-1]
			}

			child = parent

			continue
		}

		parent.mu.RLock()
		child = parent.child(part)
		parent.mu.RUnlock()

		if child == nil {
			return parent, nil, pi, portfs.ErrNoSuchFileOrDir
		}

		switch c := child.(type) {
		case *dirNode:
			if pi.IsLast() {
				return parent, c, pi, portfs.ErrFileExists
			}

			parents = append(parents, parent)
			parent = c

		case *fileNode:
			if pi.IsLast() {
				return parent, c, pi, portfs.ErrFileExists
			}

			return parent, c, pi, portfs.ErrNotADirectory

		case *symlinkNode:
			if pi.IsLast() && slm == slmLstat {
				return parent, c, pi, portfs.ErrFileExists
			}

			slCount++
			if slCount > slCountMax {
				return parent, nil, pi, portfs.ErrTooManySymlinks
			}

			if pi.ReplacePart(c.link) {
				// Absolute link target : restart from the root.
				parent = rootNode
				parents = parents[:0]
			}
		}
	}

	return parent, parent, pi, portfs.ErrFileExists
}

// statName returns the file name to report in a FileInfo.
// When the search ends on a trailing dot, dot-dot or separator the
// iterator is exhausted and its current part is empty, so the name
// is derived lexically from the path, as the os package does.
func statName(vfs *MemFS, path string, pi *portfs.PathIterator[*MemFS]) string {
	if name := pi.Part(); name != "" {
		return name
	}

	return portfs.Base(vfs, path)
}

// join joins dir and name without cleaning the result, so that dot and
// dot-dot segments are resolved by searchNode against the node tree.
func (vfs *MemFS) join(dir, name string) string {
	sep := string(vfs.PathSeparator())

	if len(dir) > 0 && dir[len(dir)-1] == vfs.PathSeparator() {
		return dir + name
	}

	return dir + sep + name
}

// createDir creates a new directory.
func (vfs *MemFS) createDir(parent *dirNode, name string, perm fs.FileMode) *dirNode {
	child := &dirNode{
		baseNode: baseNode{
			mtime: time.Now().UnixNano(),
			mode:  fs.ModeDir | (perm & fs.ModePerm),
		},
	}

	parent.addChild(name, child)

	return child
}

// createFile creates a new file.
func (vfs *MemFS) createFile(parent *dirNode, name string, perm fs.FileMode) *fileNode {
	child := &fileNode{
		baseNode: baseNode{
			mtime: time.Now().UnixNano(),
			mode:  perm & fs.ModePerm,
		},
	}

	parent.addChild(name, child)

	return child
}

// createSymlink creates a new symlink.
func (vfs *MemFS) createSymlink(parent *dirNode, name, link string) *symlinkNode {
	child := &symlinkNode{
		baseNode: baseNode{
			mtime: time.Now().UnixNano(),
			mode:  fs.ModeSymlink | fs.ModePerm,
		},
		link: link,
	}

	parent.addChild(name, child)

	return child
}

// dirNode

// addChild adds a child to a dirNode.
func (dn *dirNode) addChild(name string, child node) {
	if dn.children == nil {
		dn.children = make(children)
	}

	dn.children[name] = child
}

// removeChild removes the child from the parent dirNode.
func (dn *dirNode) removeChild(name string) {
	delete(dn.children, name)
}

// child returns the child node named name from the parent node dn.
// it returns nil if the child is not found or if there is no children.
func (dn *dirNode) child(name string) node {
	return dn.children[name]
}

// fillStatFrom returns a MemInfo (implementation of fs.FileInfo) from a dirNode dn named name.
func (dn *dirNode) fillStatFrom(name string) *MemInfo {
	dn.mu.RLock()

	fst := &MemInfo{
		name:  name,
		size:  dn.size(),
		mode:  dn.mode,
		mtime: dn.mtime,
	}

	dn.mu.RUnlock()

	return fst
}

// entries returns a slice of fs.DirEntry from a directory ordered by name.
func (dn *dirNode) entries() []fs.DirEntry {
	l := len(dn.children)
	if l == 0 {
		return nil
	}

	entries := make([]fs.DirEntry, l)
	i := 0

	for name, nd := range dn.children {
		entries[i] = nd.fillStatFrom(name)
		i++
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	return entries
}

// size returns the size of the dirNode : number of children.
func (dn *dirNode) size() int64 {
	return int64(len(dn.children))
}

// fileNode

// fillStatFrom returns a MemInfo (implementation of fs.FileInfo) from a fileNode fn named name.
func (fn *fileNode) fillStatFrom(name string) *MemInfo {
	fn.mu.RLock()

	fst := &MemInfo{
		name:  name,
		size:  fn.size(),
		mode:  fn.mode,
		mtime: fn.mtime,
	}

	fn.mu.RUnlock()

	return fst
}

// size returns the size of the file.
func (fn *fileNode) size() int64 {
	return int64(len(fn.data))
}

// symlinkNode

// fillStatFrom returns a MemInfo (implementation of fs.FileInfo) from a symlinkNode sn named name.
func (sn *symlinkNode) fillStatFrom(name string) *MemInfo {
	sn.mu.RLock()

	fst := &MemInfo{
		name:  name,
		size:  sn.size(),
		mode:  sn.mode,
		mtime: sn.mtime,
	}

	sn.mu.RUnlock()

	return fst
}

func (sn *symlinkNode) size() int64 {
	return int64(len(sn.link))
}
