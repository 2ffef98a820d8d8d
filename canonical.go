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

import "io/fs"

// Absolute returns an absolute representation of path.
// If the path is not absolute it is prefixed with the current working
// directory of the file system. Unlike Join, no lexical cleaning is
// performed : dot and dot-dot elements are preserved so that Canonical
// can resolve them against the file system.
func Absolute[T VFS](vfs T, path string) (string, error) {
	if IsAbs(vfs, path) {
		return path, nil
	}

	wd, err := vfs.Getwd()
	if err != nil {
		return "", err
	}

	return AbsoluteBase(vfs, path, wd)
}

// AbsoluteBase returns an absolute representation of path using base
// as the starting directory. If base is itself relative, it is first
// made absolute against the current working directory. An empty base
// stands for the current working directory.
//
// On Windows, a drive-relative path ("C:foo") keeps its own drive and
// takes the directory of base, and a rooted path without a volume
// ("\foo") inherits the volume of base.
func AbsoluteBase[T VFS](vfs T, path, base string) (string, error) {
	if IsAbs(vfs, path) {
		return path, nil
	}

	absBase := base
	if !IsAbs(vfs, absBase) {
		var err error

		absBase, err = Absolute(vfs, absBase)
		if err != nil {
			return "", err
		}
	}

	if path == "" {
		return absBase, nil
	}

	if vfs.OSType() == OsWindows {
		pVol := VolumeName(vfs, path)
		bVol := VolumeName(vfs, absBase)

		if pVol != "" {
			// Drive-relative path : the drive letter wins,
			// the directory comes from the base.
			rel := path[len(pVol):]
			baseRel := absBase[len(bVol):]

			if rel == "" {
				return pVol + baseRel, nil
			}

			return pVol + joinPath(vfs, baseRel, rel), nil
		}

		if IsPathSeparator(vfs, path[0]) {
			return bVol + path, nil
		}
	}

	return joinPath(vfs, absBase, path), nil
}

// Canonical returns the unique absolute path naming the same file as
// path, with all symbolic links, dot and dot-dot elements resolved.
// The path must exist. A relative path is resolved against the current
// working directory of the file system.
// If there is an error, it will be of type *PathError.
func Canonical[T VFS](vfs T, path string) (string, error) {
	return canonicalize(vfs, path, "", "canonical")
}

// CanonicalBase is like Canonical with a relative path resolved
// against base instead of the current working directory.
func CanonicalBase[T VFS](vfs T, path, base string) (string, error) {
	return canonicalize(vfs, path, base, "canonical")
}

// canonicalize resolves source element by element, accumulating the
// already resolved prefix in result. Each time a resolved element is a
// symbolic link, its target is substituted in the source and the scan
// restarts from the substitution point : an explicit state machine
// rather than recursion, so long symlink chains cannot grow the stack.
func canonicalize[T VFS](vfs T, path, base, op string) (string, error) {
	source := FromSlash(vfs, path)

	if !IsAbs(vfs, source) {
		var err error

		source, err = AbsoluteBase(vfs, source, base)
		if err != nil {
			return "", pathError(op, path, err)
		}
	}

	// The source must exist.
	if _, err := vfs.Stat(source); err != nil {
		if notFound(err) {
			return "", pathError(op, source, ErrNoSuchFileOrDir)
		}

		return "", pathError(op, source, err)
	}

	root := RootPath(vfs, source)
	result := root
	slCount := 0
	pi := NewPathIterator(vfs, source)

	for pi.Next() {
		part := pi.Part()
		if part == "" || part == "." {
			continue
		}

		if part == ".." {
			// Cannot climb above the root of the resolution.
			if result != root {
				result = parentPath(vfs, result, root)
			}

			continue
		}

		result = joinPath(vfs, result, part)
		if len(result) > PathLengthMax {
			return "", pathError(op, source, ErrNameTooLong)
		}

		fi, err := vfs.Lstat(result)
		if err != nil {
			// The element may not exist yet : unresolved dot-dot
			// elements further right can still back out of it.
			if notFound(err) {
				continue
			}

			return "", pathError(op, result, err)
		}

		if fi.Mode()&fs.ModeSymlink == 0 {
			continue
		}

		slCount++
		if slCount > SymlinkMax {
			return "", pathError(op, source, ErrTooManySymlinks)
		}

		link, err := vfs.Readlink(result)
		if err != nil {
			return "", pathError(op, result, err)
		}

		// The link element itself is not part of the result.
		result = parentPath(vfs, result, root)

		if pi.ReplacePart(FromSlash(vfs, link)) {
			// Absolute target : restart the scan on the new source.
			root = RootPath(vfs, pi.Path())
			result = root
		}

		if len(pi.Path()) > PathLengthMax {
			return "", pathError(op, source, ErrNameTooLong)
		}
	}

	return result, nil
}

// WeaklyCanonical returns Canonical applied to the longest leading
// prefix of path that exists, with the remaining, possibly nonexistent,
// suffix appended after lexical normalization. If no prefix exists at
// all the whole path is lexically normalized without further disk
// access, and no error is reported.
// If there is an error, it will be of type *PathError.
func WeaklyCanonical[T VFS](vfs T, path string) (string, error) {
	const op = "weakly_canonical"

	head := FromSlash(vfs, path)
	vol := VolumeName(vfs, head)
	root := vol + string(vfs.PathSeparator())
	sep := string(vfs.PathSeparator())

	tail := ""
	tailHasDots := false

	for head != "" {
		_, err := vfs.Stat(head)
		if err == nil {
			break
		}

		if !notFound(err) {
			return "", pathError(op, head, err)
		}

		// Strip trailing separators, the root excepted.
		for len(head) > len(root) && IsPathSeparator(vfs, head[len(head)-1]) {
			head = head[:len(head)-1]
		}

		if head == root || head == vol {
			head = ""

			break
		}

		// Move the last element of head in front of tail.
		var file string

		head, file = splitLastElement(vfs, head, vol)

		if file != "" {
			if file == "." || file == ".." {
				tailHasDots = true
			}

			if tail == "" {
				tail = file
			} else {
				tail = file + sep + tail
			}
		}
	}

	if head == "" {
		return Clean(vfs, path), nil
	}

	canon, err := canonicalize(vfs, head, "", op)
	if err != nil {
		return "", err
	}

	if tail == "" {
		return canon, nil
	}

	res := joinPath(vfs, canon, tail)
	if tailHasDots {
		return Clean(vfs, res), nil
	}

	return res, nil
}

// parentPath returns path with its last element removed,
// clamped at the root of the resolution.
func parentPath[T OSTyper](vfs T, path, root string) string {
	dir, _ := SplitAbs(vfs, path)
	if len(dir) < len(root) {
		return root
	}

	return dir
}

// splitLastElement splits off the last element of a possibly relative
// path, keeping the root directory attached to the head when present.
func splitLastElement[T OSTyper](vfs T, path, vol string) (head, file string) {
	i := len(path) - 1
	for i >= len(vol) && !IsPathSeparator(vfs, path[i]) {
		i--
	}

	if i < len(vol) {
		// No separator left : a single relative element.
		return path[:len(vol)], path[len(vol):]
	}

	if i == len(vol) {
		// The separator is the root directory : keep it in the head.
		return path[:i+1], path[i+1:]
	}

	return path[:i], path[i+1:]
}
