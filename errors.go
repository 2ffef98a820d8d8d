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
	"syscall"
)

// ErrPatternHasSeparator is returned when a bad pattern is used in MkdirTemp.
var ErrPatternHasSeparator = errors.New("pattern contains path separator")

// Errno replaces syscall.Errno for all OSes.
// The same numeric value may name a Linux errno and a Windows error code,
// the error text is selected by the OS type of the current process.
type Errno uint64 //nolint:errname // the type name `Errno` should conform to the `XxxError` format.

func (en Errno) Error() string {
	i := en + Errno(CurrentOSType())<<32

	s, ok := errText[i]
	if ok {
		return s
	}

	return "errno " + strconv.Itoa(int(en))
}

// Is returns true when the error number maps to one of the error
// sentinels of the io/fs package, so errors.Is can be used on errors
// returned by any backend.
func (en Errno) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return en == ErrNoSuchFileOrDir || en == ErrWinPathNotFound
	case fs.ErrExist:
		return en == ErrFileExists || en == ErrWinFileExists
	case fs.ErrPermission:
		return en == ErrPermDenied || en == ErrOpNotPermitted || en == ErrWinAccessDenied
	default:
		return false
	}
}

const (
	// Errors on Linux operating systems.
	// Most of the errors below can be found there :
	// https://github.com/torvalds/linux/blob/master/tools/include/uapi/asm-generic/errno-base.h

	ErrBadFileDesc     = errEBADF        // bad file descriptor.
	ErrDirNotEmpty     = errENOTEMPTY    // Directory not empty.
	ErrFileExists      = errEEXIST       // File exists.
	ErrInvalidArgument = errEINVAL       // invalid argument
	ErrIsADirectory    = errEISDIR       // File Is a directory.
	ErrNameTooLong     = errENAMETOOLONG // File name too long.
	ErrNoSuchFileOrDir = errENOENT       // No such file or directory.
	ErrNotADirectory   = errENOTDIR      // Not a directory.
	ErrNotSupported    = errENOTSUP      // Operation not supported.
	ErrOpNotPermitted  = errEPERM        // operation not permitted.
	ErrPermDenied      = errEACCES       // Permission denied.
	ErrTooManySymlinks = errELOOP        // Too many levels of symbolic links.

	errEACCES       = Errno(0xd)
	errEBADF        = Errno(0x9)
	errEEXIST       = Errno(0x11)
	errEINVAL       = Errno(0x16)
	errEISDIR       = Errno(0x15)
	errELOOP        = Errno(0x28)
	errENAMETOOLONG = Errno(0x24)
	errENOENT       = Errno(0x2)
	errENOTDIR      = Errno(0x14)
	errENOTEMPTY    = Errno(0x27)
	errENOTSUP      = Errno(0x5f)
	errEPERM        = Errno(0x1)

	// Errors on Windows operating systems.

	ErrWinAccessDenied    = Errno(5)          // Access is denied.
	ErrWinDirNameInvalid  = Errno(0x10B)      // The directory name is invalid.
	ErrWinDirNotEmpty     = Errno(145)        // The directory is not empty.
	ErrWinFileExists      = Errno(80)         // The file exists.
	ErrWinFileNotFound    = Errno(2)          // The system cannot find the file specified.
	ErrWinNotReparsePoint = Errno(4390)       // The file or directory is not a reparse point.
	ErrWinNotSupported    = Errno(0x20000082) // not supported by windows
	ErrWinPathNotFound    = Errno(3)          // The system cannot find the path specified.

	linuxError   = Errno(OsLinux) << 32
	windowsError = Errno(OsWindows) << 32
)

// errText translates an OS error number to text for all OSes.
var errText = map[Errno]string{ //nolint:gochecknoglobals // Used by Errno.Error().
	ErrBadFileDesc + linuxError:     "bad file descriptor",
	ErrDirNotEmpty + linuxError:     "directory not empty",
	ErrFileExists + linuxError:      "file exists",
	ErrInvalidArgument + linuxError: "invalid argument",
	ErrIsADirectory + linuxError:    "is a directory",
	ErrNameTooLong + linuxError:     "file name too long",
	ErrNoSuchFileOrDir + linuxError: "no such file or directory",
	ErrNotADirectory + linuxError:   "not a directory",
	ErrNotSupported + linuxError:    "operation not supported",
	ErrOpNotPermitted + linuxError:  "operation not permitted",
	ErrPermDenied + linuxError:      "permission denied",
	ErrTooManySymlinks + linuxError: "too many levels of symbolic links",

	ErrWinAccessDenied + windowsError:    "Access is denied.",
	ErrWinDirNameInvalid + windowsError:  "The directory name is invalid.",
	ErrWinDirNotEmpty + windowsError:     "The directory is not empty.",
	ErrWinFileExists + windowsError:      "The file exists.",
	ErrWinFileNotFound + windowsError:    "The system cannot find the file specified.",
	ErrWinNotReparsePoint + windowsError: "The file or directory is not a reparse point.",
	ErrWinNotSupported + windowsError:    "not supported by windows",
	ErrWinPathNotFound + windowsError:    "The system cannot find the path specified.",
}

// pathError wraps err in a *fs.PathError carrying the operation name op.
// Errors already wrapped by a backend are unwrapped first, so the
// operation reported is always the one of the calling algorithm.
func pathError(op, path string, err error) error {
	switch e := err.(type) { //nolint:errorlint // unwrap only the outermost wrapper.
	case *fs.PathError:
		return &fs.PathError{Op: op, Path: path, Err: e.Err}
	default:
		return &fs.PathError{Op: op, Path: path, Err: err}
	}
}

// notFound returns true when err reports that an entry is absent.
// "Not a directory" counts as absent too : a path whose prefix is a
// regular file names nothing, and a racing removal of a parent directory
// surfaces as ENOTDIR on some systems.
func notFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, ErrNotADirectory)
}
