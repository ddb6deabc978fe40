// Package version derives the build identity reported in logs, the MCP
// client handshake, and outgoing user agents. The commit hash comes from an
// -ldflags override when set, otherwise from the VCS stamp in the binary's
// build info; binaries built outside a checkout report "dev".
package version

import "runtime/debug"

// AppName identifies this binary in version strings and handshakes.
const AppName = "conclave"

// commit can be injected at build time:
//
//	go build -ldflags "-X github.com/conclave-run/conclave/pkg/version.commit=$(git rev-parse HEAD)"
var commit string

// Commit returns the short (8-character) commit hash of this build.
func Commit() string {
	if c := shorten(commit); c != "" {
		return c
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				if c := shorten(s.Value); c != "" {
					return c
				}
			}
		}
	}
	return "dev"
}

// Full returns "conclave/<commit>".
func Full() string {
	return AppName + "/" + Commit()
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
