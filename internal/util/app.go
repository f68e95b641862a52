package util

import (
	"net/url"
	"strings"
)

func GetAppName() string {
	return "Presenca"
}

// Link that opens the signing view locked to one record, e.g. "https://app/?ata=<id>".
func GetRecordSigningLink(appURL, recordId string) string {
	u, err := url.Parse(appURL)
	if err != nil || u.Scheme == "" {
		return strings.TrimRight(appURL, "?") + "?ata=" + url.QueryEscape(recordId)
	}

	q := u.Query()
	q.Set("ata", recordId)
	u.RawQuery = q.Encode()
	return u.String()
}
