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
	"io/fs"
	"strconv"
	"strings"

	"github.com/valyala/fastrand"
)

// MkdirTemp creates a new temporary directory in the directory dir
// and returns the pathname of the new directory.
// The new directory's name is generated by adding a random string to the end of pattern.
// If pattern includes a "*", the random string replaces the last "*" instead.
// If dir is the empty string, MkdirTemp uses the default directory for temporary files,
// as returned by TempDir.
// Multiple programs or goroutines calling MkdirTemp simultaneously will not choose the
// same directory.
// It is the caller's responsibility to remove the directory when it is no longer needed.
func MkdirTemp[T VFS](vfs T, dir, pattern string) (string, error) {
	const op = "mkdirtemp"

	if dir == "" {
		dir = TempDir(vfs)
	}

	prefix, suffix, err := prefixAndSuffix(vfs, pattern)
	if err != nil {
		return "", &fs.PathError{Op: op, Path: pattern, Err: err}
	}

	prefix = joinPath(vfs, dir, prefix)
	try := 0

	for {
		name := prefix + nextRandom() + suffix

		err := vfs.Mkdir(name, 0o700)
		if err == nil {
			return name, nil
		}

		if errors.Is(err, fs.ErrExist) {
			try++
			if try < 10000 {
				continue
			}

			return "", &fs.PathError{Op: op, Path: prefix + "*" + suffix, Err: fs.ErrExist}
		}

		if errors.Is(err, fs.ErrNotExist) {
			if _, serr := vfs.Stat(dir); serr != nil && errors.Is(serr, fs.ErrNotExist) {
				return "", serr
			}
		}

		return "", err
	}
}

// prefixAndSuffix splits pattern by the last wildcard "*", if applicable,
// returning prefix as the part before "*" and suffix as the part after "*".
func prefixAndSuffix[T OSTyper](vfs T, pattern string) (prefix, suffix string, err error) {
	for i := 0; i < len(pattern); i++ {
		if IsPathSeparator(vfs, pattern[i]) {
			return "", "", ErrPatternHasSeparator
		}
	}

	if pos := strings.LastIndexByte(pattern, '*'); pos != -1 {
		prefix, suffix = pattern[:pos], pattern[pos+1:]
	} else {
		prefix = pattern
	}

	return prefix, suffix, nil
}

// nextRandom returns a random nine digit suffix for temporary names.
func nextRandom() string {
	r := fastrand.Uint32()

	return strconv.Itoa(int(1e9 + r%1e9))[1:]
}
