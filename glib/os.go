package glib

import (
	"fmt"
	"os"
	"runtime"
)

func OsType() string {
	return runtime.GOOS
}

func OsArch() string {
	return runtime.GOARCH
}

func OsHost() string {

	osHost := "unknown"

	hostName, _ := os.Hostname()
	if len(hostName) > 0 {
		osHost = hostName
	}

	return osHost

}

// OsBanner is the one-line platform description logged at startup.
func OsBanner() string {
	return fmt.Sprintf("os=[%s/%s] ver=[%s] host=[%s]", OsType(), OsArch(), OsVer(), OsHost())
}
