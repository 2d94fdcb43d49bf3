package utils

import (
	"fmt"
	"strings"

	"github.com/ua-parser/uap-go/uaparser"
)

const unknownFamily = "Unknown"

var uaParser = uaparser.NewFromSaved()

// DeviceSummary 把 User-Agent 轉成 "裝置 | 作業系統 | 瀏覽器"。
// 解析不出來的部分由解析器給 "Other"，解析器本身出錯則全部為 "Unknown"。
func DeviceSummary(userAgent string) (summary string) {
	defer func() {
		if recover() != nil {
			summary = formatSummary(unknownFamily, unknownFamily, unknownFamily)
		}
	}()

	client := uaParser.Parse(userAgent)

	device, os, browser := unknownFamily, unknownFamily, unknownFamily
	if client.Device != nil {
		device = familyOrUnknown(client.Device.Family)
	}
	if client.Os != nil {
		os = familyOrUnknown(client.Os.Family)
	}
	if client.UserAgent != nil {
		browser = familyOrUnknown(client.UserAgent.Family)
	}

	return formatSummary(device, os, browser)
}

func familyOrUnknown(family string) string {
	if strings.TrimSpace(family) == "" {
		return unknownFamily
	}
	return family
}

func formatSummary(device, os, browser string) string {
	return fmt.Sprintf("%s | %s | %s", device, os, browser)
}
