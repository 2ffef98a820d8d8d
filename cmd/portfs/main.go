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

// Command portfs exposes the path algorithms on the native file system :
//
//	portfs canon <path>       resolve a path to its canonical form
//	portfs weak <path>        resolve the longest existing prefix of a path
//	portfs rel <base> <path>  express a path relative to a base directory
//	portfs rm <path>          remove a path and its contents recursively
//	portfs du <path>          report the disk usage of the volume of a path
//
// Logging is configured with the PORTFS_LOG_LEVEL and PORTFS_NO_COLOR
// environment variables, optionally read from a .env file in the
// current directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/portfs/portfs"
	"github.com/portfs/portfs/vfs/osfs"
)

var ExitCode = 0 //nolint:gochecknoglobals // Exit code returned by main.

func setupLogging() {
	level := slog.LevelInfo

	switch strings.ToLower(os.Getenv("PORTFS_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("PORTFS_NO_COLOR") != "",
		}),
	))
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [canon|weak|rel|rm|du] <path>...\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	flag.Usage = usage
	flag.Parse()

	// The .env file is optional.
	_ = godotenv.Load()

	setupLogging()

	args := flag.Args()
	if len(args) < 1 {
		usage()

		ExitCode = 2

		return
	}

	vfs := osfs.New()

	err := run(vfs, args[0], args[1:])
	if err != nil {
		slog.Error("Command failed.", "cmd", args[0], "err", err)

		ExitCode = 1
	}
}

func run(vfs *osfs.OsFS, cmd string, args []string) error {
	switch cmd {
	case "canon":
		return runCanonical(vfs, args)
	case "weak":
		return runWeaklyCanonical(vfs, args)
	case "rel":
		return runRelative(vfs, args)
	case "rm":
		return runRemoveAll(vfs, args)
	case "du":
		return runDiskUsage(vfs, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runCanonical(vfs *osfs.OsFS, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("canon: expected 1 argument, got %d", len(args))
	}

	p, err := portfs.Canonical(vfs, args[0])
	if err != nil {
		return err
	}

	fmt.Println(p)

	return nil
}

func runWeaklyCanonical(vfs *osfs.OsFS, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("weak: expected 1 argument, got %d", len(args))
	}

	p, err := portfs.WeaklyCanonical(vfs, args[0])
	if err != nil {
		return err
	}

	fmt.Println(p)

	return nil
}

func runRelative(vfs *osfs.OsFS, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("rel: expected 2 arguments, got %d", len(args))
	}

	p, err := portfs.Relative(vfs, args[1], args[0])
	if err != nil {
		return err
	}

	fmt.Println(p)

	return nil
}

func runRemoveAll(vfs *osfs.OsFS, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("rm: expected 1 argument, got %d", len(args))
	}

	n, err := portfs.RemoveAll(vfs, args[0])
	if n > 0 {
		slog.Info("Removed entries.", "path", args[0], "count", humanize.Comma(int64(n)))
	}

	return err
}

func runDiskUsage(vfs *osfs.OsFS, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("du: expected 1 argument, got %d", len(args))
	}

	du, err := vfs.StatFS(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("total %s free %s avail %s\n",
		humanize.Bytes(du.Total), humanize.Bytes(du.Free), humanize.Bytes(du.Avail))

	return nil
}
