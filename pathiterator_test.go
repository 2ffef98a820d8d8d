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
)

// TestPathIterator tests PathIterator methods.
func TestPathIterator(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path   string
		parts  []string
		osType portfs.OSType
	}{
		{path: `C:\`, parts: nil, osType: portfs.OsWindows},
		{path: `C:\Users`, parts: []string{"Users"}, osType: portfs.OsWindows},
		{path: `c:\नमस्ते\दुनिया`, parts: []string{"नमस्ते", "दुनिया"}, osType: portfs.OsWindows},
		{path: `\\host\share\file`, parts: []string{"file"}, osType: portfs.OsWindows},

		{path: "/", parts: nil, osType: portfs.OsLinux},
		{path: "/a", parts: []string{"a"}, osType: portfs.OsLinux},
		{path: "/b/c/d", parts: []string{"b", "c", "d"}, osType: portfs.OsLinux},
		{path: "/नमस्ते/दुनिया", parts: []string{"नमस्ते", "दुनिया"}, osType: portfs.OsLinux},
	}

	for _, c := range cases {
		vfs := newOSFn(c.osType)

		pi := portfs.NewPathIterator(vfs, c.path)
		i := 0

		for ; pi.Next(); i++ {
			if i >= len(c.parts) {
				continue
			}

			if pi.Part() != c.parts[i] {
				t.Errorf("%s : want part %d to be %s, got %s", c.path, i, c.parts[i], pi.Part())
			}

			wantLeft := pi.Path()[:pi.Start()]
			if pi.Left() != wantLeft {
				t.Errorf("%s : want left %d to be %s, got %s", c.path, i, wantLeft, pi.Left())
			}

			wantLeftPart := pi.Path()[:pi.End()]
			if pi.LeftPart() != wantLeftPart {
				t.Errorf("%s : want left %d to be %s, got %s", c.path, i, wantLeftPart, pi.LeftPart())
			}

			wantRight := pi.Path()[pi.End():]
			if pi.Right() != wantRight {
				t.Errorf("%s : want right %d to be %s, got %s", c.path, i, wantRight, pi.Right())
			}

			wantRightPart := pi.Path()[pi.Start():]
			if pi.RightPart() != wantRightPart {
				t.Errorf("%s : want right %d to be %s, got %s", c.path, i, wantRightPart, pi.RightPart())
			}

			wantIsLast := i == (len(c.parts) - 1)
			if pi.IsLast() != wantIsLast {
				t.Errorf("%s : want IsLast %d to be %t, got %t", c.path, i, wantIsLast, pi.IsLast())
			}
		}

		if i != len(c.parts) {
			t.Errorf("%s : want %d parts, got %d parts", pi.Path(), len(c.parts), i)
		}

		if c.osType == portfs.OsWindows {
			if pi.VolumeNameLen() == 0 || pi.VolumeName() == "" {
				t.Errorf("%s : want VolumeName != '', got ''", pi.Path())
			}
		} else {
			if pi.VolumeNameLen() != 0 || pi.VolumeName() != "" {
				t.Errorf("%s : want VolumeName == '', got %s ", pi.Path(), pi.VolumeName())
			}
		}
	}
}

// TestPathIteratorReplacePart tests the symbolic link substitution.
// The remainder of the path is concatenated without lexical cleaning,
// so dot-dot elements stay in place for the caller to resolve.
func TestPathIteratorReplacePart(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path    string
		part    string
		newPart string
		newPath string
		reset   bool
		osType  portfs.OSType
	}{
		{
			path: "/a/very/very/long/path", part: "long", newPart: "/a",
			newPath: "/a/path", reset: true, osType: portfs.OsLinux,
		},
		{
			path: "/path", part: "path", newPart: "../../..",
			newPath: "/../../..", reset: false, osType: portfs.OsLinux,
		},
		{
			path: "/a/relative/path", part: "relative", newPart: "very/long",
			newPath: "/a/very/long/path", reset: false, osType: portfs.OsLinux,
		},
		{
			path: "/an/absolute/path", part: "absolute", newPart: "/just/another",
			newPath: "/just/another/path", reset: true, osType: portfs.OsLinux,
		},
		{
			path: `c:\an\absolute\path`, part: `absolute`, newPart: `c:\just\another`,
			newPath: `c:\just\another\path`, reset: true, osType: portfs.OsWindows,
		},
		{
			path: `c:\a\random\path`, part: `random`, newPart: `very\long`,
			newPath: `c:\a\very\long\path`, reset: false, osType: portfs.OsWindows,
		},
	}

	for _, c := range cases {
		vfs := newOSFn(c.osType)

		pi := portfs.NewPathIterator(vfs, c.path)
		for pi.Next() {
			if pi.Part() == c.part {
				reset := pi.ReplacePart(c.newPart)

				if pi.Path() != c.newPath {
					t.Errorf("%s : want new path to be %s, got %s", c.path, c.newPath, pi.Path())
				}

				if reset != c.reset {
					t.Errorf("%s : want Reset to be %t, got %t", c.path, c.reset, reset)
				}

				break
			}
		}
	}
}

// A substitution continues at the part preceding the replaced one,
// so the next call to Next resumes on the substituted text.
func TestPathIteratorReplacePartResume(t *testing.T) {
	t.Parallel()

	vfs := newOSFn(portfs.OsLinux)

	pi := portfs.NewPathIterator(vfs, "/a/link/tail")
	for pi.Next() {
		if pi.Part() == "link" {
			break
		}
	}

	if pi.ReplacePart("b/c") {
		t.Fatal("want no reset after same prefix substitution")
	}

	var parts []string
	for pi.Next() {
		parts = append(parts, pi.Part())
	}

	want := []string{"b", "c", "tail"}
	if len(parts) != len(want) {
		t.Fatalf("want parts %v, got %v", want, parts)
	}

	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("want part %d to be %s, got %s", i, want[i], parts[i])
		}
	}
}
