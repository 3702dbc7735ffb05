package glib

import "encoding/json"

func JsonFromStruct(data interface{}) string {

	xData := "{}"

	jonData, jsonErr := json.Marshal(data)

	if jsonErr != nil {
		return xData
	}

	xData = string(jonData)

	return xData
}
