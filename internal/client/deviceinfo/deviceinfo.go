// Package deviceinfo builds the enrollment payload describing the machine
// the client runs on. Every field is truncated to its wire cap before it is
// returned; callers can send the result as-is.
package deviceinfo

import (
	"os"
	"runtime"
	"strings"

	"github.com/eprometna/client-go/internal/client/domain"
	"github.com/eprometna/client-go/pkg/idx"
)

const unknown = "Unknown"

// Collect gathers host facts for device registration. Fields that cannot be
// determined fall back to "Unknown" (truncated), matching what the server
// already stores for devices that could not report them. The device ID is a
// fresh ULID per enrollment; the server-issued device token, not this ID, is
// what identifies the installation afterwards.
func Collect(appVersion, buildVersion string) domain.DeviceInfo {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = unknown
	}

	info := domain.DeviceInfo{
		Platform:     runtime.GOOS,
		Brand:        firstNonEmpty(readDMIField("sys_vendor"), unknown),
		ModelName:    firstNonEmpty(readDMIField("product_name"), unknown),
		DeviceName:   hostname,
		OSName:       runtime.GOOS,
		OSVersion:    firstNonEmpty(readOSRelease(), unknown),
		DeviceID:     idx.New().String(),
		AppVersion:   firstNonEmpty(appVersion, "1.0.0"),
		BuildVersion: firstNonEmpty(buildVersion, "1"),
	}

	return info.Truncated()
}

// readDMIField reads a DMI identity field on Linux; other platforms return "".
func readDMIField(name string) string {
	data, err := os.ReadFile("/sys/devices/virtual/dmi/id/" + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func readOSRelease() string {
	data, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
