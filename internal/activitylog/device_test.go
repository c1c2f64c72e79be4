package activitylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDevice(t *testing.T) {
	cases := []struct {
		name string
		ua   string
		want string
	}{
		{"android diutamakan sebelum linux", "Mozilla/5.0 (Linux; Android 14; SM-A546B) Mobile Safari/537.36", DeviceMobile},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", DeviceMobile},
		{"windows desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", DeviceWindows},
		{"macintosh", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Safari/605.1.15", DeviceMacintosh},
		{"linux desktop", "Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0", DeviceLinux},
		{"ua kosong", "", DeviceUnknown},
		{"bot tak dikenal", "curl/8.4.0", DeviceUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyDevice(tc.ua))
		})
	}
}
