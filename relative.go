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
	"errors"
	"strings"
)

// Rel returns a relative path that is lexically equivalent to targpath when
// joined to basepath with an intervening separator. That is,
// Join(basepath, Rel(basepath, targpath)) is equivalent to targpath itself.
// On success, the returned path will always be relative to basepath,
// even if basepath and targpath share no elements.
// An error is returned if targpath can't be made relative to basepath or if
// knowing the current working directory would be necessary to compute it.
// Rel calls Clean on the result.
func Rel[T OSTyper](vfs T, basepath, targpath string) (string, error) {
	sep := vfs.PathSeparator()
	baseVol := VolumeName(vfs, basepath)
	targVol := VolumeName(vfs, targpath)
	base := Clean(vfs, basepath)
	targ := Clean(vfs, targpath)

	if sameWord(targ, base) {
		return ".", nil
	}

	base = base[len(baseVol):]
	targ = targ[len(targVol):]

	if base == "." {
		base = ""
	} else if base == "" && VolumeNameLen(vfs, baseVol) > 2 /* isUNC */ {
		// Treat any targetpath matching `\\host\share` basepath as absolute path.
		base = string(sep)
	}

	// Can't use IsAbs - `\a` and `a` are both relative in Windows.
	baseSlashed := len(base) > 0 && base[0] == sep
	targSlashed := len(targ) > 0 && targ[0] == sep

	if baseSlashed != targSlashed || !sameWord(baseVol, targVol) {
		return "", errors.New("Rel: can't make " + targpath + " relative to " + basepath)
	}

	// Position base[b0:bi] and targ[t0:ti] at the first differing elements.
	bl := len(base)
	tl := len(targ)

	var b0, bi, t0, ti int

	for {
		for bi < bl && base[bi] != sep {
			bi++
		}

		for ti < tl && targ[ti] != sep {
			ti++
		}

		if !sameWord(targ[t0:ti], base[b0:bi]) {
			break
		}

		if bi < bl {
			bi++
		}

		if ti < tl {
			ti++
		}

		b0 = bi
		t0 = ti
	}

	if base[b0:bi] == ".." {
		return "", errors.New("Rel: can't make " + targpath + " relative to " + basepath)
	}

	if b0 != bl {
		// Base elements left. Must go up before going down.
		seps := strings.Count(base[b0:bl], string(sep))
		size := 2 + seps*3

		if tl != t0 {
			size += 1 + tl - t0
		}

		buf := make([]byte, size)
		n := copy(buf, "..")

		for i := 0; i < seps; i++ {
			buf[n] = sep
			copy(buf[n+1:], "..")
			n += 3
		}

		if t0 != tl {
			buf[n] = sep
			copy(buf[n+1:], targ[t0:])
		}

		return string(buf), nil
	}

	return targ[t0:], nil
}

// Relative returns path expressed relative to base. Both paths are
// weakly canonicalized first, the derivation itself is purely lexical :
// one dot-dot element for each element of base beyond the common
// prefix, followed by the remaining elements of path.
// If either weak canonicalization fails, the failure propagates and no
// partial result is produced.
func Relative[T VFS](vfs T, path, base string) (string, error) {
	const op = "relative"

	wcBase, err := WeaklyCanonical(vfs, base)
	if err != nil {
		return "", pathError(op, base, err)
	}

	wcPath, err := WeaklyCanonical(vfs, path)
	if err != nil {
		return "", pathError(op, path, err)
	}

	return Rel(vfs, wcBase, wcPath)
}

func sameWord(a, b string) bool {
	return a == b
}
