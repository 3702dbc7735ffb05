package glib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func OsVer() string {

	osVer := "unknown"

	// GetVersion lies about the build on manifest-less binaries
	xVerInfo := windows.RtlGetVersion()
	if xVerInfo == nil {
		return osVer
	}

	osVer = fmt.Sprintf("%v.%v.%v", xVerInfo.MajorVersion, xVerInfo.MinorVersion, xVerInfo.BuildNumber)

	return osVer
}
