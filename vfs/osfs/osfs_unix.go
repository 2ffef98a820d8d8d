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

//go:build unix

package osfs

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// StatFS returns the disk usage of the volume containing path.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) StatFS(path string) (*DiskUsage, error) {
	const op = "statfs"

	var stat unix.Statfs_t

	err := unix.Statfs(path, &stat)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: path, Err: err}
	}

	bsize := uint64(stat.Bsize)

	du := &DiskUsage{
		Total: stat.Blocks * bsize,
		Free:  stat.Bfree * bsize,
		Avail: stat.Bavail * bsize,
	}

	return du, nil
}
