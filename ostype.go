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

import "runtime"

// OSType defines the operating system type.
type OSType uint16

const (
	OsUnknown OSType = iota // Unknown
	OsLinux                 // Linux
	OsWindows               // Windows
	OsDarwin                // Darwin
)

// String returns the name of the operating system type.
func (ost OSType) String() string {
	switch ost {
	case OsLinux:
		return "Linux"
	case OsWindows:
		return "Windows"
	case OsDarwin:
		return "Darwin"
	default:
		return "Unknown"
	}
}

// CurrentOSType returns the current OSType.
func CurrentOSType() OSType {
	return currentOSType
}

// currentOSType is the current OSType.
var currentOSType = func() OSType { //nolint:gochecknoglobals // Store the current OS Type.
	switch runtime.GOOS {
	case "linux":
		return OsLinux
	case "darwin":
		return OsDarwin
	case "windows":
		return OsWindows
	default:
		return OsUnknown
	}
}()

// OSTyper is the interface that wraps the OS type related methods.
type OSTyper interface {
	// OSType returns the operating system type of the file system.
	OSType() OSType

	// PathSeparator returns the OS-specific path separator.
	PathSeparator() uint8
}

// OSTypeFn provides OS type functions to a file system.
// File system backends embed it to implement the OSTyper interface.
type OSTypeFn struct {
	osType        OSType // osType defines the operating system type.
	pathSeparator uint8  // pathSeparator is the OS-specific path separator.
}

// OSType returns the operating system type of the file system.
func (osf *OSTypeFn) OSType() OSType {
	return osf.osType
}

// PathSeparator returns the OS-specific path separator.
func (osf *OSTypeFn) PathSeparator() uint8 {
	return osf.pathSeparator
}

// SetOSType sets the operating system type.
// OsUnknown sets the operating system type of the host.
func (osf *OSTypeFn) SetOSType(osType OSType) {
	if osType == OsUnknown {
		osType = CurrentOSType()
	}

	osf.osType = osType

	sep := uint8('/')
	if osType == OsWindows {
		sep = '\\'
	}

	osf.pathSeparator = sep
}
