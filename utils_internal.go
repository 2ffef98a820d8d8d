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

package portfs

import "strings"

func isSlash(c uint8) bool {
	return c == '\\' || c == '/'
}

// reservedNames lists reserved Windows names. Search for PRN in
// https://docs.microsoft.com/en-us/windows/desktop/fileio/naming-a-file
// for details.
var reservedNames = []string{ //nolint:gochecknoglobals // Used by isReservedName().
	"CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
}

// isReservedName returns true, if path is Windows reserved name.
// See reservedNames for the full list.
func isReservedName(path string) bool {
	if path == "" {
		return false
	}

	for _, reserved := range reservedNames {
		if strings.EqualFold(path, reserved) {
			return true
		}
	}

	return false
}

func joinWindows[T OSTyper](vfs T, elem []string) string {
	for i, e := range elem {
		if e != "" {
			return joinNonEmpty(vfs, elem[i:])
		}
	}

	return ""
}

// joinNonEmpty is like join, but it assumes that the first element is non-empty.
func joinNonEmpty[T OSTyper](vfs T, elem []string) string {
	sep := string(vfs.PathSeparator())

	if len(elem[0]) == 2 && elem[0][1] == ':' {
		// First element is drive letter without terminating slash.
		// Keep path relative to current directory on that drive.
		// Skip empty elements.
		i := 1
		for ; i < len(elem); i++ {
			if elem[i] != "" {
				break
			}
		}

		return Clean(vfs, elem[0]+strings.Join(elem[i:], sep))
	}

	// The following logic prevents Join from inadvertently creating a
	// UNC path on Windows. Unless the first element is a UNC path, Join
	// shouldn't create a UNC path. See golang.org/issue/9167.
	p := Clean(vfs, strings.Join(elem, sep))
	if !isUNC(vfs, p) {
		return p
	}

	// p == UNC only allowed when the first element is a UNC path.
	head := Clean(vfs, elem[0])
	if isUNC(vfs, head) {
		return p
	}

	// head + tail == UNC, but joining two non-UNC paths should not result
	// in a UNC path. Undo creation of UNC path.
	tail := Clean(vfs, strings.Join(elem[1:], sep))
	if head[len(head)-1] == vfs.PathSeparator() {
		return head + tail
	}

	return head + sep + tail
}

// isUNC reports whether path is a UNC path.
func isUNC[T OSTyper](vfs T, path string) bool {
	return VolumeNameLen(vfs, path) > 2
}

// joinPath joins dir and name without cleaning the result.
func joinPath[T OSTyper](vfs T, dir, name string) string {
	if len(dir) > 0 && IsPathSeparator(vfs, dir[len(dir)-1]) {
		return dir + name
	}

	return dir + string(vfs.PathSeparator()) + name
}

// A lazybuf is a lazily constructed path buffer.
// It supports append, reading previously appended bytes,
// and retrieving the final string. It does not allocate a buffer
// to hold the output until that output diverges from s.
type lazybuf struct {
	path       string
	volAndPath string
	buf        []byte
	w          int
	volLen     int
}

func (b *lazybuf) index(i int) byte {
	if b.buf != nil {
		return b.buf[i]
	}

	return b.path[i]
}

func (b *lazybuf) append(c byte) {
	if b.buf == nil {
		if b.w < len(b.path) && b.path[b.w] == c {
			b.w++

			return
		}

		b.buf = make([]byte, len(b.path))
		copy(b.buf, b.path[:b.w])
	}

	b.buf[b.w] = c
	b.w++
}

func (b *lazybuf) string() string {
	if b.buf == nil {
		return b.volAndPath[:b.volLen+b.w]
	}

	return b.volAndPath[:b.volLen] + string(b.buf[:b.w])
}
