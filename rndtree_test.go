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
	"github.com/portfs/portfs/vfs/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRndTree(t *testing.T) {
	t.Parallel()

	vfs := memfs.New()

	rt, err := portfs.NewRndTree(vfs, "/base", &portfs.RndTreeParams{
		MinName: 5, MaxName: 10,
		MinDirs: 10, MaxDirs: 20,
		MinFiles: 20, MaxFiles: 40,
		MinFileSize: 0, MaxFileSize: 1024,
		MinSymlinks: 5, MaxSymlinks: 10,
	})
	require.NoError(t, err)
	require.NoError(t, rt.CreateTree())

	for _, dir := range rt.Dirs {
		fi, err := vfs.Stat(dir)
		require.NoError(t, err, "Stat(%q)", dir)
		assert.True(t, fi.IsDir())
	}

	for _, file := range rt.Files {
		fi, err := vfs.Stat(file)
		require.NoError(t, err, "Stat(%q)", file)
		assert.True(t, fi.Mode().IsRegular())
	}

	for _, sl := range rt.SymLinks {
		link, err := vfs.Readlink(sl.NewName)
		require.NoError(t, err, "Readlink(%q)", sl.NewName)
		assert.Equal(t, sl.OldName, link)
	}

	// Removing the base directory accounts for every generated entry
	// plus the base directory itself.
	n, err := portfs.RemoveAll(vfs, "/base")
	require.NoError(t, err)
	assert.Equal(t, rt.Count()+1, n)
}

func TestRndTreeSymlinksWithoutFiles(t *testing.T) {
	t.Parallel()

	vfs := memfs.New()

	// Symbolic links have nothing to point at when no files are generated.
	rt, err := portfs.NewRndTree(vfs, "/base", &portfs.RndTreeParams{
		MinName: 4, MaxName: 8,
		MinDirs: 1, MaxDirs: 2,
		MinSymlinks: 3, MaxSymlinks: 5,
	})
	require.NoError(t, err)
	require.NoError(t, rt.CreateTree())

	assert.Empty(t, rt.SymLinks)
	assert.Equal(t, len(rt.Dirs), rt.Count())
}

func TestRndTreeOutOfRange(t *testing.T) {
	t.Parallel()

	vfs := memfs.New()

	cases := []struct {
		params  portfs.RndTreeParams
		wantErr error
	}{
		{params: portfs.RndTreeParams{MinName: 0, MaxName: 0}, wantErr: portfs.ErrNameOutOfRange},
		{params: portfs.RndTreeParams{MinName: 2, MaxName: 1}, wantErr: portfs.ErrNameOutOfRange},
		{params: portfs.RndTreeParams{MinName: 1, MaxName: 1, MinDirs: -1}, wantErr: portfs.ErrDirsOutOfRange},
		{params: portfs.RndTreeParams{MinName: 1, MaxName: 1, MinFiles: -1}, wantErr: portfs.ErrFilesOutOfRange},
		{params: portfs.RndTreeParams{MinName: 1, MaxName: 1, MinFileSize: -1}, wantErr: portfs.ErrFileSizeOutOfRange},
		{params: portfs.RndTreeParams{MinName: 1, MaxName: 1, MinSymlinks: -1}, wantErr: portfs.ErrSymlinksOutOfRange},
	}

	for _, c := range cases {
		_, err := portfs.NewRndTree(vfs, "/base", &c.params)
		assert.ErrorIs(t, err, c.wantErr)
	}
}
