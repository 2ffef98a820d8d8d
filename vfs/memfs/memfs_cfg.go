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

// Package memfs implements an in-memory file system.
//
// Paths follow the Linux conventions (slash separated, rooted at "/")
// whatever the host operating system, which makes the file system
// usable for deterministic tests on every platform.
package memfs

import (
	"io/fs"
	"time"

	"github.com/portfs/portfs"
)

// New returns a new memory file system (MemFS).
func New(opts ...Option) *MemFS {
	vfs := &MemFS{
		rootNode: &dirNode{
			baseNode: baseNode{
				mtime: time.Now().UnixNano(),
				mode:  fs.ModeDir | 0o755,
			},
		},
		curDir: "/",
	}

	vfs.SetOSType(portfs.OsLinux)

	for _, opt := range opts {
		opt(vfs)
	}

	return vfs
}

// Name returns the name of the fileSystem.
func (vfs *MemFS) Name() string {
	return vfs.name
}

// Type returns the type of the fileSystem or Identity manager.
func (*MemFS) Type() string {
	return "MemFS"
}

// Options

// WithName returns an option function which sets the name of the file system.
func WithName(name string) Option {
	return func(vfs *MemFS) {
		vfs.name = name
	}
}

// WithSystemDirs returns an option function which creates the system
// directories of an emulated file system (/home, /root and /tmp).
func WithSystemDirs() Option {
	return func(vfs *MemFS) {
		for _, dir := range portfs.SystemDirs(vfs, "") {
			err := vfs.MkdirAll(dir.Path, dir.Perm)
			if err != nil {
				panic("SystemDirs " + err.Error())
			}
		}
	}
}
