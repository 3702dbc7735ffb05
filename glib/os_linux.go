package glib

import (
	"bufio"
	"os"
	"strings"
)

func OsVer() string {
	return osReleaseName("/etc/os-release")
}

func osReleaseName(osFilePath string) string {

	osVer := "unknown"

	file, err := os.Open(osFilePath)
	if err != nil {
		return osVer
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineStr := scanner.Text()
		if strings.HasPrefix(lineStr, "PRETTY_NAME") {

			iDex := strings.Index(lineStr, "=")
			if iDex > 0 {
				lineStr = strings.TrimSpace(lineStr[iDex+1:])
				osVer = strings.Trim(lineStr, "\"")
			}

			break
		}

	}

	return osVer

}
