package deviceinfo

import (
	"testing"

	"github.com/eprometna/client-go/internal/client/domain"
	"github.com/stretchr/testify/require"
)

func TestCollectRespectsWireCaps(t *testing.T) {
	t.Parallel()

	info := Collect("2.14.0-beta", "20260901")

	require.LessOrEqual(t, len(info.Platform), domain.MaxPlatformLen)
	require.LessOrEqual(t, len(info.Brand), domain.MaxBrandLen)
	require.LessOrEqual(t, len(info.ModelName), domain.MaxModelNameLen)
	require.LessOrEqual(t, len(info.DeviceName), domain.MaxDeviceNameLen)
	require.LessOrEqual(t, len(info.OSName), domain.MaxOSNameLen)
	require.LessOrEqual(t, len(info.OSVersion), domain.MaxOSVersionLen)
	require.LessOrEqual(t, len(info.DeviceID), domain.MaxDeviceIDLen)
	require.LessOrEqual(t, len(info.AppVersion), domain.MaxAppVersionLen)
	require.LessOrEqual(t, len(info.BuildVersion), domain.MaxBuildVersionLen)

	require.NotEmpty(t, info.DeviceID)
	require.Equal(t, "2.14.", info.AppVersion)
}

func TestCollectGeneratesFreshDeviceIDs(t *testing.T) {
	t.Parallel()

	a := Collect("", "")
	b := Collect("", "")
	require.NotEqual(t, a.DeviceID, b.DeviceID)
	require.Equal(t, "1.0.0", a.AppVersion)
	require.Equal(t, "1", a.BuildVersion)
}

func TestTruncated(t *testing.T) {
	t.Parallel()

	info := domain.DeviceInfo{
		Platform:  "windows",
		Brand:     "Lenovo ThinkPad",
		ModelName: "ThinkPad X1 Carbon Gen 11",
	}.Truncated()

	require.Equal(t, "windo", info.Platform)
	require.Equal(t, "Lenovo Thi", info.Brand)
	require.Equal(t, "ThinkPad X1 Car", info.ModelName)
}
