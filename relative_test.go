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
	"testing"

	"github.com/portfs/portfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelative(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	require.NoError(t, vfs.MkdirAll("/a/b/d/e", portfs.DefaultDirPerm))

	cases := []struct {
		path string
		base string
		want string
	}{
		{path: "/a/b/c", base: "/a/b", want: "c"},
		{path: "/a/b", base: "/a/b/c", want: ".."},
		{path: "/a/b/d/e", base: "/a/b/c", want: "../d/e"},
		{path: "/a/b/c", base: "/a/b/c", want: "."},

		// Symlinks are resolved before the lexical derivation.
		{path: "/a/b/d/e", base: "/a/l/c", want: "../d/e"},
		{path: "/a/l/c", base: "/a/labs", want: "c"},

		// Nonexistent paths are weakly canonicalized.
		{path: "/a/l/missing/x", base: "/a/b", want: "missing/x"},
	}

	for _, c := range cases {
		got, err := portfs.Relative(vfs, c.path, c.base)
		require.NoError(t, err, "Relative(%q, %q)", c.path, c.base)
		assert.Equal(t, c.want, got, "Relative(%q, %q)", c.path, c.base)
	}
}

func TestRelativeRoundTrip(t *testing.T) {
	t.Parallel()

	vfs := newTestFS(t)

	base := "/a/b/c"

	for _, path := range []string{"/a/b/f.txt", "/a/b/c", "/a/l"} {
		rel, err := portfs.Relative(vfs, path, base)
		require.NoError(t, err)

		joined := portfs.Join(vfs, base, rel)

		want, err := portfs.WeaklyCanonical(vfs, path)
		require.NoError(t, err)
		assert.Equal(t, want, joined, "Join(%q, Relative(%q, %q))", base, path, base)
	}
}
