package main

// AppVersion is the application version.
// Stable: "1.0.0", "1.1.0"  |  Test: "1.0.1-beta", "1.1.0-rc1", "2.0.0-dev"
const AppVersion = "0.1.0"

// AppChannel returns "stable" or "test" based on the version string.
func AppChannel() string {
	for _, c := range AppVersion {
		if c == '-' {
			return "test"
		}
	}
	return "stable"
}
