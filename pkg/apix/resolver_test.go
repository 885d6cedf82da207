package apix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts ResolveOptions
		want string
	}{
		{
			name: "production ignores overrides",
			opts: ResolveOptions{Platform: PlatformAndroid, DebugHost: "192.168.1.5:8081"},
			want: DefaultBaseURL,
		},
		{
			name: "dev web uses loopback",
			opts: ResolveOptions{Dev: true, Platform: PlatformWeb},
			want: "http://localhost:8090/api",
		},
		{
			name: "dev android prefers debug host and strips port",
			opts: ResolveOptions{Dev: true, Platform: PlatformAndroid, DebugHost: "192.168.1.5:8081", EmulatorIP: "10.0.3.2"},
			want: "http://192.168.1.5:8090/api",
		},
		{
			name: "dev android falls back to emulator override",
			opts: ResolveOptions{Dev: true, Platform: PlatformAndroid, EmulatorIP: "10.0.3.2"},
			want: "http://10.0.3.2:8090/api",
		},
		{
			name: "dev android defaults to emulator loopback alias",
			opts: ResolveOptions{Dev: true, Platform: PlatformAndroid},
			want: "http://10.0.2.2:8090/api",
		},
		{
			name: "dev ios prefers debug host",
			opts: ResolveOptions{Dev: true, Platform: PlatformIOS, DebugHost: "192.168.1.5:8081", LanIP: "192.168.1.20"},
			want: "http://192.168.1.5:8090/api",
		},
		{
			name: "dev ios falls back to lan ip",
			opts: ResolveOptions{Dev: true, Platform: PlatformIOS, LanIP: "192.168.1.20"},
			want: "http://192.168.1.20:8090/api",
		},
		{
			name: "dev ios without addresses uses loopback",
			opts: ResolveOptions{Dev: true, Platform: PlatformIOS},
			want: DefaultBaseURL,
		},
		{
			name: "unknown platform uses loopback",
			opts: ResolveOptions{Dev: true, Platform: "televison"},
			want: DefaultBaseURL,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ResolveBaseURL(tc.opts))
		})
	}
}
