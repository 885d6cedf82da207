package apix

import (
	"fmt"
	"strings"
)

// Supported client platforms for base URL resolution.
const (
	PlatformWeb     = "web"
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// DefaultBaseURL is the production-shaped fallback when no development
// override applies.
const DefaultBaseURL = "http://localhost:8090/api"

// androidEmulatorHost is the loopback alias the Android emulator exposes for
// the host machine.
const androidEmulatorHost = "10.0.2.2"

// ResolveOptions feed the one-time base URL selection. Resolution happens at
// client construction time, never per request.
type ResolveOptions struct {
	// Dev enables platform-dependent overrides; outside dev the default
	// base URL is always used.
	Dev bool

	// Platform is one of web, android or ios.
	Platform string

	// DebugHost is the development bundler's host metadata when available,
	// possibly carrying a ":port" suffix which is discarded.
	DebugHost string

	// LanIP is the workstation's LAN address, used for physical iOS devices
	// that cannot reach the host's loopback.
	LanIP string

	// EmulatorIP overrides the standard Android emulator loopback alias.
	EmulatorIP string
}

// ResolveBaseURL selects the API base URL for the current platform.
func ResolveBaseURL(opts ResolveOptions) string {
	if !opts.Dev {
		return DefaultBaseURL
	}

	debugHost := stripPort(opts.DebugHost)

	switch opts.Platform {
	case PlatformAndroid:
		switch {
		case debugHost != "":
			return devBaseURL(debugHost)
		case opts.EmulatorIP != "":
			return devBaseURL(opts.EmulatorIP)
		default:
			return devBaseURL(androidEmulatorHost)
		}

	case PlatformIOS:
		switch {
		case debugHost != "":
			return devBaseURL(debugHost)
		case opts.LanIP != "":
			return devBaseURL(opts.LanIP)
		}
	}

	// Web and anything unrecognized talk to the host loopback.
	return DefaultBaseURL
}

func devBaseURL(host string) string {
	return fmt.Sprintf("http://%s:8090/api", host)
}

// stripPort drops a trailing ":port" from bundler host metadata.
func stripPort(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		return host[:i]
	}
	return host
}
