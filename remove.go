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

// entryType is the non-following type of a directory entry, reduced to
// what the removal algorithms distinguish : a plain directory is
// traversed, anything else (files, symlinks, devices) is deleted as a
// single entry.
type entryType int

const (
	entryNotFound entryType = iota
	entryDir
	entryOther
)

// queryEntryType returns the type of path without following a final
// symbolic link. An absent entry is reported as entryNotFound, not as
// an error.
func queryEntryType[T VFS](vfs T, path string) (entryType, error) {
	fi, err := vfs.Lstat(path)
	if err != nil {
		if notFound(err) {
			return entryNotFound, nil
		}

		return entryNotFound, err
	}

	if fi.IsDir() {
		return entryDir, nil
	}

	return entryOther, nil
}

// Remove deletes the named file or (empty) directory. It returns false
// without error when the entry does not exist, true when the entry was
// removed. An entry vanishing between the type query and the deletion
// is a lost race with another process, not a failure.
// If there is an error, it will be of type *PathError.
func Remove[T VFS](vfs T, path string) (bool, error) {
	const op = "remove"

	typ, err := queryEntryType(vfs, path)
	if err != nil {
		return false, pathError(op, path, err)
	}

	return removeEntry(vfs, path, typ, op)
}

// removeEntry deletes a single entry of a known type, tolerating a
// concurrent removal.
func removeEntry[T VFS](vfs T, path string, typ entryType, op string) (bool, error) {
	if typ == entryNotFound {
		return false, nil
	}

	err := vfs.Remove(path)
	if err != nil && !notFound(err) {
		return false, pathError(op, path, err)
	}

	return true, nil
}

// RemoveAll deletes path and, if it is a plain directory (not a
// symlink to one), its entire contents first, bottom-up. It returns
// the number of entries removed, 0 when the path does not exist.
// An iteration error aborts the walk and reports the count removed
// so far; entries vanishing during the walk count as removed.
// If there is an error, it will be of type *PathError.
func RemoveAll[T VFS](vfs T, path string) (int, error) {
	const op = "remove_all"

	typ, err := queryEntryType(vfs, path)
	if err != nil {
		return 0, pathError(op, path, err)
	}

	if typ == entryNotFound {
		return 0, nil
	}

	return removeAll(vfs, path, typ)
}

func removeAll[T VFS](vfs T, path string, typ entryType) (int, error) {
	const op = "remove_all"

	count := 0

	if typ == entryDir {
		entries, err := vfs.ReadDir(path)
		if err != nil {
			return count, pathError(op, path, err)
		}

		for _, entry := range entries {
			childPath := joinPath(vfs, path, entry.Name())

			childType, err := queryEntryType(vfs, childPath)
			if err != nil {
				return count, pathError(op, childPath, err)
			}

			n, err := removeAll(vfs, childPath, childType)

			count += n
			if err != nil {
				return count, err
			}
		}
	}

	if _, err := removeEntry(vfs, path, typ, op); err != nil {
		return count, err
	}

	return count + 1, nil
}
