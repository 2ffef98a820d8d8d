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
	"sync"

	"github.com/portfs/portfs"
)

// MemFS implements an in-memory file system using the portfs.VFS interface.
type MemFS struct {
	rootNode        *dirNode     // rootNode represents the root directory of the file system.
	name            string       // name is the name of the file system.
	curDir          string       // curDir is the current directory.
	mu              sync.RWMutex // mu is the RWMutex used to access curDir.
	portfs.OSTypeFn              // OSTypeFn provides OS type functions.
}

// Option defines the option function used for initializing MemFS.
type Option func(*MemFS)

// node is the interface implemented by dirNode, fileNode and symlinkNode.
type node interface {
	// fillStatFrom returns a *MemInfo (implementation of fs.FileInfo) from a node named name.
	fillStatFrom(name string) *MemInfo

	// size returns the size of the node.
	size() int64
}

// dirNode is the structure for a directory.
type dirNode struct {
	children children // children are the nodes present in the directory.
	baseNode          // baseNode is the common structure of directories, files and symbolic links.
}

// children are the children of a directory.
type children = map[string]node

// fileNode is the structure for a file.
type fileNode struct {
	data     []byte // data is the file content.
	baseNode        // baseNode is the common structure of directories, files and symbolic links.
}

// symlinkNode is the structure for a symbolic link.
type symlinkNode struct {
	link     string // link is the symbolic link value.
	baseNode        // baseNode is the common structure of directories, files and symbolic links.
}

// baseNode is the common structure of directories, files and symbolic links.
type baseNode struct {
	mu    sync.RWMutex // mu is the RWMutex used to access the content of the node.
	mtime int64        // mtime is the modification time.
	mode  fs.FileMode  // mode represents a file's mode and permission bits.
}

// slMode defines the behavior of searchNode function relatively to symlinks.
type slMode int

const (
	slmLstat slMode = iota + 1 // slmLstat makes searchNode function follow symbolic links like Lstat.
	slmEval                    // slmEval makes searchNode function follow symbolic links like Stat.
)

// MemInfo is the implementation of fs.DirEntry (returned by ReadDir)
// and fs.FileInfo (returned by Stat and Lstat).
type MemInfo struct {
	name  string      // name is the name of the file.
	size  int64       // size is the size of the file.
	mtime int64       // mtime is the modification time.
	mode  fs.FileMode // mode represents a file's mode and permission bits.
}
