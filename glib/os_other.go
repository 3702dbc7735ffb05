//go:build !linux && !windows

package glib

func OsVer() string {
	return "unknown"
}
