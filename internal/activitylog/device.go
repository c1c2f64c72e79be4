package activitylog

import "strings"

const (
	DeviceMobile    = "MOBILE"
	DeviceWindows   = "WINDOWS"
	DeviceMacintosh = "MACINTOSH"
	DeviceLinux     = "LINUX"
	DeviceUnknown   = "UNKNOWN"
)

var mobileTokens = []string{"android", "iphone", "ipad", "ipod", "mobile", "opera mini"}

// ClassifyDevice menebak kategori perangkat dari User-Agent. Token mobile
// dicek lebih dulu karena UA Android juga memuat "linux".
func ClassifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	if ua == "" {
		return DeviceUnknown
	}

	for _, token := range mobileTokens {
		if strings.Contains(ua, token) {
			return DeviceMobile
		}
	}
	switch {
	case strings.Contains(ua, "windows"):
		return DeviceWindows
	case strings.Contains(ua, "macintosh"):
		return DeviceMacintosh
	case strings.Contains(ua, "linux"):
		return DeviceLinux
	default:
		return DeviceUnknown
	}
}
