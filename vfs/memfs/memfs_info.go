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
	"time"
)

// Info returns the FileInfo for the file or subdirectory described by the entry.
// The returned FileInfo may be from the time of the original directory read
// or from the time of the call to Info. If the file has been removed or renamed
// since the directory read, Info may return an error satisfying errors.Is(err, ErrNotExist).
// If the entry denotes a symbolic link, Info reports the information about the link itself,
// not the link's target.
func (info *MemInfo) Info() (fs.FileInfo, error) {
	return info, nil
}

// IsDir reports whether the entry describes a directory.
func (info *MemInfo) IsDir() bool {
	return info.mode.IsDir()
}

// Mode returns the file mode bits.
func (info *MemInfo) Mode() fs.FileMode {
	return info.mode
}

// ModTime returns the modification time.
func (info *MemInfo) ModTime() time.Time {
	return time.Unix(0, info.mtime)
}

// Name returns the base name of the file.
func (info *MemInfo) Name() string {
	return info.name
}

// Size returns the length in bytes for regular files; system-dependent for others.
func (info *MemInfo) Size() int64 {
	return info.size
}

// Sys returns the underlying data source (can return nil).
func (info *MemInfo) Sys() any {
	return info
}

// Type returns the type bits for the entry.
// The type bits are a subset of the usual FileMode bits, those returned by the FileMode.Type method.
func (info *MemInfo) Type() fs.FileMode {
	return info.mode & fs.ModeType
}
