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

import "hash"

// CopyFile copies a file between file systems and returns an error if any.
// The permission bits of the source file are carried over to the copy.
func CopyFile(dstFs, srcFs VFS, dstPath, srcPath string) error {
	_, err := CopyFileHash(dstFs, srcFs, dstPath, srcPath, nil)

	return err
}

// CopyFileHash copies a file between file systems and returns the hash sum
// of the source file when hasher is not nil.
func CopyFileHash(dstFs, srcFs VFS, dstPath, srcPath string, hasher hash.Hash) (sum []byte, err error) {
	data, err := srcFs.ReadFile(srcPath)
	if err != nil {
		return nil, err
	}

	info, err := srcFs.Stat(srcPath)
	if err != nil {
		return nil, err
	}

	err = dstFs.WriteFile(dstPath, data, info.Mode().Perm())
	if err != nil {
		return nil, err
	}

	if hasher == nil {
		return nil, nil
	}

	hasher.Reset()
	hasher.Write(data)

	return hasher.Sum(nil), nil
}

// HashFile hashes a file and returns the hash sum.
func HashFile(vfs VFS, name string, hasher hash.Hash) (sum []byte, err error) {
	data, err := vfs.ReadFile(name)
	if err != nil {
		return nil, err
	}

	hasher.Reset()
	hasher.Write(data)

	return hasher.Sum(nil), nil
}
