package domain

// Wire-compatibility caps for DeviceInfo string fields. The backend stores
// these columns at fixed widths, so every field is truncated client-side
// before transmission.
const (
	MaxPlatformLen     = 5
	MaxBrandLen        = 10
	MaxModelNameLen    = 15
	MaxDeviceNameLen   = 10
	MaxOSNameLen       = 5
	MaxOSVersionLen    = 10
	MaxDeviceIDLen     = 10
	MaxAppVersionLen   = 5
	MaxBuildVersionLen = 5
)

// DeviceInfo is the enrollment payload sent with device registration.
type DeviceInfo struct {
	Platform     string `json:"platform"`
	Brand        string `json:"brand"`
	ModelName    string `json:"modelName"`
	DeviceName   string `json:"deviceName"`
	OSName       string `json:"osName"`
	OSVersion    string `json:"osVersion"`
	DeviceID     string `json:"deviceId"`
	AppVersion   string `json:"appVersion"`
	BuildVersion string `json:"buildVersion"`
}

// Truncated returns a copy with every field cut to its wire cap.
func (d DeviceInfo) Truncated() DeviceInfo {
	return DeviceInfo{
		Platform:     truncate(d.Platform, MaxPlatformLen),
		Brand:        truncate(d.Brand, MaxBrandLen),
		ModelName:    truncate(d.ModelName, MaxModelNameLen),
		DeviceName:   truncate(d.DeviceName, MaxDeviceNameLen),
		OSName:       truncate(d.OSName, MaxOSNameLen),
		OSVersion:    truncate(d.OSVersion, MaxOSVersionLen),
		DeviceID:     truncate(d.DeviceID, MaxDeviceIDLen),
		AppVersion:   truncate(d.AppVersion, MaxAppVersionLen),
		BuildVersion: truncate(d.BuildVersion, MaxBuildVersionLen),
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
