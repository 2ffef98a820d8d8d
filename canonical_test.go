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
	"errors"
	"io/fs"
	"testing"

	"github.com/portfs/portfs"
	"github.com/portfs/portfs/vfs/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestFS returns a memory file system with a small tree of
// directories, files and symbolic links :
//
//	/a/b/c        directory
//	/a/b/f.txt    file
//	/a/l          relative symlink to b
//	/a/labs       absolute symlink to /a/b
func newTestFS(t *testing.T) *memfs.MemFS {
	t.Helper()

	vfs := memfs.New(memfs.WithSystemDirs())

	require.NoError(t, vfs.MkdirAll("/a/b/c", portfs.DefaultDirPerm))
	require.NoError(t, vfs.WriteFile("/a/b/f.txt", []byte("portfs"), portfs.DefaultFilePerm))
	require.NoError(t, vfs.Symlink("b", "/a/l"))
	require.NoError(t, vfs.Symlink("/a/b", "/a/labs"))

	return vfs
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	cases := []struct {
		path string
		want string
	}{
		{path: "/", want: "/"},
		{path: "/a/b/c", want: "/a/b/c"},
		{path: "/a/b/c/", want: "/a/b/c"},
		{path: "/a//b/./c", want: "/a/b/c"},
		{path: "/a/b/c/..", want: "/a/b"},
		{path: "/../../..", want: "/"},
		{path: "/a/l", want: "/a/b"},
		{path: "/a/l/c", want: "/a/b/c"},
		{path: "/a/labs/c", want: "/a/b/c"},
		{path: "/a/l/../b/f.txt", want: "/a/b/f.txt"},
	}

	for _, c := range cases {
		got, err := portfs.Canonical(vfs, c.path)
		require.NoError(t, err, "Canonical(%q)", c.path)
		assert.Equal(t, c.want, got, "Canonical(%q)", c.path)
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	for _, path := range []string{"/a/l/c", "/a/labs", "/a/b/c/.."} {
		once, err := portfs.Canonical(vfs, path)
		require.NoError(t, err)

		twice, err := portfs.Canonical(vfs, once)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "Canonical(%q) not idempotent", path)
	}
}

func TestCanonicalSymlinkChain(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	require.NoError(t, vfs.Symlink("/c2", "/c1"))
	require.NoError(t, vfs.Symlink("/c3", "/c2"))
	require.NoError(t, vfs.Symlink("/a/b", "/c3"))

	got, err := portfs.Canonical(vfs, "/c1")
	require.NoError(t, err)
	assert.Equal(t, "/a/b", got)

	got, err = portfs.Canonical(vfs, "/c1/c")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", got)
}

func TestCanonicalSymlinkCycle(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	require.NoError(t, vfs.Symlink("/y", "/x"))
	require.NoError(t, vfs.Symlink("/x", "/y"))

	_, err := portfs.Canonical(vfs, "/x")
	require.Error(t, err)
	assert.ErrorIs(t, err, portfs.ErrTooManySymlinks)
}

func TestCanonicalNotFound(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	_, err := portfs.Canonical(vfs, "/no/such/path")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var pErr *fs.PathError

	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "canonical", pErr.Op)
}

func TestCanonicalRelative(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	require.NoError(t, vfs.Chdir("/a"))

	got, err := portfs.Canonical(vfs, "l/c")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", got)

	got, err = portfs.CanonicalBase(vfs, "c", "/a/b")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", got)
}

func TestWeaklyCanonical(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	cases := []struct {
		path string
		want string
	}{
		// Existing paths behave like Canonical.
		{path: "/a/l/c", want: "/a/b/c"},
		{path: "/a/b/c/..", want: "/a/b"},

		// The nonexistent tail is appended after the canonical head.
		{path: "/a/l/c/missing/x", want: "/a/b/c/missing/x"},
		{path: "/a/labs/missing", want: "/a/b/missing"},

		// Dots in the tail are normalized lexically.
		{path: "/a/b/missing/../other", want: "/a/b/other"},

		// No existing prefix : the whole path is normalized lexically.
		{path: "/zzz/www", want: "/zzz/www"},
		{path: "/zzz/../www", want: "/www"},
		{path: "/nonexistent/sub/dir/../file", want: "/nonexistent/sub/file"},
	}

	for _, c := range cases {
		got, err := portfs.WeaklyCanonical(vfs, c.path)
		require.NoError(t, err, "WeaklyCanonical(%q)", c.path)
		assert.Equal(t, c.want, got, "WeaklyCanonical(%q)", c.path)
	}
}

func TestWeaklyCanonicalNoError(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	// Unlike Canonical, a nonexistent path is not an error.
	got, err := portfs.WeaklyCanonical(vfs, "/no/such/path")
	require.NoError(t, err)
	assert.Equal(t, "/no/such/path", got)
}

func TestAbsolute(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	require.NoError(t, vfs.Chdir("/a/b"))

	got, err := portfs.Absolute(vfs, "c")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", got)

	// Dot and dot-dot elements are preserved for Canonical to resolve.
	got, err = portfs.Absolute(vfs, "../l/c")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/../l/c", got)

	got, err = portfs.AbsoluteBase(vfs, "f.txt", "/a/b")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/f.txt", got)

	got, err = portfs.AbsoluteBase(vfs, "", "/a/b")
	require.NoError(t, err)
	assert.Equal(t, "/a/b", got)
}
