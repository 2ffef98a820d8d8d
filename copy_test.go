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

package portfs_test

import (
	"io/fs"
	"testing"

	"github.com/portfs/portfs"
	"github.com/portfs/portfs/vfs/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestCopyFile(t *testing.T) {
	t.Parallel()

	srcFs := memfs.New()
	dstFs := memfs.New()

	content := []byte("some content to copy between file systems")

	require.NoError(t, srcFs.MkdirAll("/src", portfs.DefaultDirPerm))
	require.NoError(t, dstFs.MkdirAll("/dst", portfs.DefaultDirPerm))
	require.NoError(t, srcFs.WriteFile("/src/f.txt", content, 0o644))

	require.NoError(t, portfs.CopyFile(dstFs, srcFs, "/dst/f.txt", "/src/f.txt"))

	data, err := dstFs.ReadFile("/dst/f.txt")
	require.NoError(t, err)
	assert.Equal(t, content, data)

	fi, err := dstFs.Stat("/dst/f.txt")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o644), fi.Mode().Perm())
}

func TestCopyFileHash(t *testing.T) {
	t.Parallel()

	srcFs := memfs.New()
	dstFs := memfs.New()

	content := []byte("hashed content")

	require.NoError(t, srcFs.WriteFile("/f.txt", content, portfs.DefaultFilePerm))

	hasher := blake3.New()

	sum, err := portfs.CopyFileHash(dstFs, srcFs, "/f.txt", "/f.txt", hasher)
	require.NoError(t, err)

	wantSum, err := portfs.HashFile(dstFs, "/f.txt", hasher)
	require.NoError(t, err)

	assert.Equal(t, wantSum, sum)
}

func TestHashFile(t *testing.T) {
	t.Parallel()

	vfs := memfs.New()

	require.NoError(t, vfs.WriteFile("/a.txt", []byte("aaa"), portfs.DefaultFilePerm))
	require.NoError(t, vfs.WriteFile("/b.txt", []byte("aaa"), portfs.DefaultFilePerm))
	require.NoError(t, vfs.WriteFile("/c.txt", []byte("ccc"), portfs.DefaultFilePerm))

	hasher := blake3.New()

	sumA, err := portfs.HashFile(vfs, "/a.txt", hasher)
	require.NoError(t, err)

	sumB, err := portfs.HashFile(vfs, "/b.txt", hasher)
	require.NoError(t, err)

	sumC, err := portfs.HashFile(vfs, "/c.txt", hasher)
	require.NoError(t, err)

	assert.Equal(t, sumA, sumB)
	assert.NotEqual(t, sumA, sumC)
}
