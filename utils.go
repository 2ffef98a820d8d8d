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

import (
	"io/fs"
	"strings"
)

// Base returns the last element of path.
// Trailing path separators are removed before extracting the last element.
// If the path is empty, Base returns ".".
// If the path consists entirely of separators, Base returns a single separator.
func Base[T OSTyper](vfs T, path string) string {
	if path == "" {
		return "."
	}

	// Strip trailing slashes.
	for len(path) > 0 && IsPathSeparator(vfs, path[len(path)-1]) {
		path = path[0 : len(path)-1]
	}

	// Throw away volume name
	path = path[VolumeNameLen(vfs, path):]

	// Find the last element
	i := len(path) - 1
	for i >= 0 && !IsPathSeparator(vfs, path[i]) {
		i--
	}

	if i >= 0 {
		path = path[i+1:]
	}

	// If empty now, it had only slashes.
	if path == "" {
		return string(vfs.PathSeparator())
	}

	return path
}

// Clean returns the shortest path name equivalent to path
// by purely lexical processing. It applies the following rules
// iteratively until no further processing can be done:
//
//  1. Replace multiple Separator elements with a single one.
//  2. Eliminate each . path name element (the current directory).
//  3. Eliminate each inner .. path name element (the parent directory)
//     along with the non-.. element that precedes it.
//  4. Eliminate .. elements that begin a rooted path:
//     that is, replace "/.." by "/" at the beginning of a path,
//     assuming Separator is '/'.
//
// The returned path ends in a slash only if it represents a root directory,
// such as "/" on Unix or `C:\` on Windows.
//
// Finally, any occurrences of slash are replaced by Separator.
//
// If the result of this process is an empty string, Clean
// returns the string ".".
//
// See also Rob Pike, “Lexical File Names in Plan 9 or
// Getting Dot-Dot Right,”
// https://9p.io/sys/doc/lexnames.html
func Clean[T OSTyper](vfs T, path string) string {
	sep := vfs.PathSeparator()
	originalPath := path
	volLen := VolumeNameLen(vfs, path)

	path = path[volLen:]
	if path == "" {
		if volLen > 1 && originalPath[1] != ':' {
			// should be UNC
			return FromSlash(vfs, originalPath)
		}

		return originalPath + "."
	}

	rooted := IsPathSeparator(vfs, path[0])

	// Invariants:
	//	reading from path; r is index of next byte to process.
	//	writing to buf; w is index of next byte to write.
	//	dotdot is index in buf where .. must stop, either because
	//		it is the leading slash or it is a leading ../../.. prefix.
	n := len(path)
	out := lazybuf{path: path, volAndPath: originalPath, volLen: volLen}
	r, dotdot := 0, 0

	if rooted {
		out.append(sep)

		r, dotdot = 1, 1
	}

	for r < n {
		switch {
		case IsPathSeparator(vfs, path[r]):
			// empty path element
			r++
		case path[r] == '.' && (r+1 == n || IsPathSeparator(vfs, path[r+1])):
			// . element
			r++
		case path[r] == '.' && path[r+1] == '.' && (r+2 == n || IsPathSeparator(vfs, path[r+2])):
			// .. element: remove to last separator
			r += 2

			switch {
			case out.w > dotdot:
				// can backtrack
				out.w--
				for out.w > dotdot && !IsPathSeparator(vfs, out.index(out.w)) {
					out.w--
				}
			case !rooted:
				// cannot backtrack, but not rooted, so append .. element.
				if out.w > 0 {
					out.append(sep)
				}

				out.append('.')
				out.append('.')
				dotdot = out.w
			}
		default:
			// real path element.
			// add slash if needed
			if rooted && out.w != 1 || !rooted && out.w != 0 {
				out.append(sep)
			}
			// copy element
			for ; r < n && !IsPathSeparator(vfs, path[r]); r++ {
				out.append(path[r])
			}
		}
	}

	// Turn empty string into "."
	if out.w == 0 {
		out.append('.')
	}

	return FromSlash(vfs, out.string())
}

// Dir returns all but the last element of path, typically the path's directory.
// After dropping the final element, Dir calls Clean on the path and trailing
// slashes are removed.
// If the path is empty, Dir returns ".".
// If the path consists entirely of separators, Dir returns a single separator.
// The returned path does not end in a separator unless it is the root directory.
func Dir[T OSTyper](vfs T, path string) string {
	vol := VolumeName(vfs, path)

	i := len(path) - 1
	for i >= len(vol) && !IsPathSeparator(vfs, path[i]) {
		i--
	}

	dir := Clean(vfs, path[len(vol):i+1])
	if dir == "." && len(vol) > 2 {
		// must be UNC
		return vol
	}

	return vol + dir
}

// FromSlash returns the result of replacing each slash ('/') character
// in path with a separator character. Multiple slashes are replaced
// by multiple separators.
func FromSlash[T OSTyper](vfs T, path string) string {
	if vfs.OSType() != OsWindows {
		return path
	}

	return strings.ReplaceAll(path, "/", string(vfs.PathSeparator()))
}

// FromUnixPath returns a valid path for the file system from a unix path.
// For Windows file systems, absolute paths are prefixed with the default
// volume and relative paths are preserved.
func FromUnixPath[T OSTyper](vfs T, path string) string {
	if vfs.OSType() != OsWindows {
		return path
	}

	if path == "" || path[0] != '/' {
		return FromSlash(vfs, path)
	}

	return Join(vfs, DefaultVolume, FromSlash(vfs, path))
}

// IsAbs reports whether the path is absolute.
func IsAbs[T OSTyper](vfs T, path string) bool {
	if vfs.OSType() != OsWindows {
		return strings.HasPrefix(path, "/")
	}

	if isReservedName(path) {
		return true
	}

	l := VolumeNameLen(vfs, path)
	if l == 0 {
		return false
	}

	path = path[l:]
	if path == "" {
		return false
	}

	return isSlash(path[0])
}

// IsPathSeparator reports whether c is a directory separator character.
func IsPathSeparator[T OSTyper](vfs T, c uint8) bool {
	if vfs.OSType() != OsWindows {
		return c == '/'
	}

	return c == '\\' || c == '/'
}

// Join joins any number of path elements into a single path, adding a
// separating slash if necessary. The result is Cleaned; in particular,
// all empty strings are ignored.
func Join[T OSTyper](vfs T, elem ...string) string {
	if vfs.OSType() != OsWindows {
		for i, e := range elem {
			if e != "" {
				return Clean(vfs, strings.Join(elem[i:], string(vfs.PathSeparator())))
			}
		}

		return ""
	}

	return joinWindows(vfs, elem)
}

// Split splits path immediately following the final Separator,
// separating it into a directory and file name component.
// If there is no Separator in path, Split returns an empty dir
// and file set to path.
// The returned values have the property that path = dir+file.
func Split[T OSTyper](vfs T, path string) (dir, file string) {
	vol := VolumeName(vfs, path)

	i := len(path) - 1
	for i >= len(vol) && !IsPathSeparator(vfs, path[i]) {
		i--
	}

	return path[:i+1], path[i+1:]
}

// SplitAbs splits an absolute path immediately preceding the final Separator,
// separating it into a directory and file name component.
// If there is no Separator in path, SplitAbs returns an empty dir
// and file set to path.
// The returned values have the property that path = dir + PathSeparator + file.
func SplitAbs[T OSTyper](vfs T, path string) (dir, file string) {
	l := VolumeNameLen(vfs, path)

	i := len(path) - 1
	for i >= l && !IsPathSeparator(vfs, path[i]) {
		i--
	}

	return path[:i], path[i+1:]
}

// ToSlash returns the result of replacing each separator character
// in path with a slash ('/') character. Multiple separators are
// replaced by multiple slashes.
func ToSlash[T OSTyper](vfs T, path string) string {
	if vfs.PathSeparator() == '/' {
		return path
	}

	return strings.ReplaceAll(path, string(vfs.PathSeparator()), "/")
}

// VolumeName returns leading volume name.
// Given "C:\foo\bar" it returns "C:" on Windows.
// Given "\\host\share\foo" it returns "\\host\share".
// On other platforms it returns "".
func VolumeName[T OSTyper](vfs T, path string) string {
	return path[:VolumeNameLen(vfs, path)]
}

// VolumeNameLen returns length of the leading volume name on Windows.
// It returns 0 elsewhere.
func VolumeNameLen[T OSTyper](vfs T, path string) int {
	if vfs.OSType() != OsWindows {
		return 0
	}

	if len(path) < 2 {
		return 0
	}

	// with drive letter
	c := path[0]
	if path[1] == ':' && ('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return 2
	}

	// is it UNC? https://msdn.microsoft.com/en-us/library/windows/desktop/aa365247(v=vs.85).aspx
	if l := len(path); l >= 5 && isSlash(path[0]) && isSlash(path[1]) &&
		!isSlash(path[2]) && path[2] != '.' {
		// first, leading `\\` and next shouldn't be `\`. its server name.
		for n := 3; n < l-1; n++ {
			// second, next '\' shouldn't be repeated.
			if isSlash(path[n]) {
				n++
				// third, following something characters. its share name.
				if !isSlash(path[n]) {
					if path[n] == '.' {
						break
					}

					for ; n < l; n++ {
						if isSlash(path[n]) {
							break
						}
					}

					return n
				}

				break
			}
		}
	}

	return 0
}

// RootPath returns the root of an absolute path : the volume name, if any,
// followed by a single separator ("/" on Unix, `C:\` or `\\host\share\`
// on Windows).
func RootPath[T OSTyper](vfs T, path string) string {
	return VolumeName(vfs, path) + string(vfs.PathSeparator())
}

// TempDir returns the default directory to use for temporary files
// on the file system.
func TempDir[T OSTyper](vfs T) string {
	if vfs.OSType() != OsWindows {
		return "/tmp"
	}

	return Join(vfs, DefaultVolume, `\Windows\Temp`)
}

// DirInfo contains information to create a directory.
type DirInfo struct {
	Path string
	Perm fs.FileMode
}

// SystemDirs returns an array of system directories always present
// in an emulated file system.
func SystemDirs[T OSTyper](vfs T, basePath string) []DirInfo {
	switch vfs.OSType() {
	case OsWindows:
		return []DirInfo{
			{Path: Join(vfs, basePath, `\Users`), Perm: DefaultDirPerm},
			{Path: Join(vfs, basePath, `\Windows\Temp`), Perm: DefaultDirPerm},
		}
	default:
		return []DirInfo{
			{Path: Join(vfs, basePath, "/home"), Perm: 0o755},
			{Path: Join(vfs, basePath, "/root"), Perm: 0o700},
			{Path: Join(vfs, basePath, "/tmp"), Perm: 0o777},
		}
	}
}
