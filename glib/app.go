package glib

import (
	"os"
	"path/filepath"
)

func AppBaseDir() string {

	sRet := ""

	xFilePath, xFilePathErr := filepath.Abs(os.Args[0])
	if xFilePathErr != nil {
		return sRet
	}

	sRet = filepath.Dir(xFilePath)

	return sRet
}

func AppFileName() string {

	sRet := ""

	xFilePath, xFilePathErr := filepath.Abs(os.Args[0])
	if xFilePathErr != nil {
		return sRet
	}

	sRet = filepath.Base(xFilePath)

	return sRet

}

// AppPath joins elem onto the directory holding the executable.
func AppPath(elem ...string) string {
	return filepath.Join(append([]string{AppBaseDir()}, elem...)...)
}
