package glib

import (
	"os"
	"path/filepath"
)

func FileExists(path string) bool {

	bRet := false

	xFileInfo, xFileInfoErr := os.Stat(path)
	if xFileInfoErr != nil {
		return bRet
	}

	if !xFileInfo.IsDir() {
		bRet = true
	}

	return bRet

}

func FileReadAllText(path string) string {

	sData := ""

	xFileData, xFileDataErr := os.ReadFile(path)
	if xFileDataErr != nil {
		return sData
	}

	sData = string(xFileData)

	return sData

}

// FileWriteAll creates missing parent directories before writing.
func FileWriteAll(path string, data []byte) error {

	xDirErr := os.MkdirAll(filepath.Dir(path), 0755)
	if xDirErr != nil {
		return xDirErr
	}

	return os.WriteFile(path, data, 0644)

}
