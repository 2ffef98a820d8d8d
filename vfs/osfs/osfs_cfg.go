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

package osfs

import "github.com/portfs/portfs"

// OsFS implements the native file system using the portfs.VFS interface.
type OsFS struct {
	portfs.OSTypeFn // OSTypeFn provides OS type functions.
}

// New returns a new OsFS file system.
func New() *OsFS {
	vfs := &OsFS{}
	vfs.SetOSType(portfs.CurrentOSType())

	return vfs
}

// Name returns the name of the fileSystem.
func (vfs *OsFS) Name() string {
	return ""
}

// Type returns the type of the fileSystem or Identity manager.
func (*OsFS) Type() string {
	return "OsFS"
}

// DiskUsage describes the space of a file system volume.
type DiskUsage struct {
	Total uint64 // Total is the size of the volume in bytes.
	Free  uint64 // Free is the number of free bytes for unprivileged users.
	Avail uint64 // Avail is the number of free bytes.
}
