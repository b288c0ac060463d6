package main

import (
	"fmt"
	"io"
	"runtime/debug"
)

var version = getVersion()

// getVersion derives a version string from the VCS stamp in the build info.
func getVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}

	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if modified == "true" {
		return revision + "-dirty"
	}
	return revision
}

func printBanner(w io.Writer) {
	fmt.Fprintf(w, "purpleblog %s\n", version)
	fmt.Fprintln(w, "A tool for converting Markdown files to HTML pages with template.")
}
