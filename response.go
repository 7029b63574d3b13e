package daikinhttp

import (
	"net/url"
	"strings"
)

const (
	statusPrefix = "ret="

	StatusOK         = "OK"
	StatusParamNG    = "PARAM NG"
	StatusAdvancedNG = "ADV_NG"
)

// DecodeResponse parses a Daikin response body into a RawRecord.
// Response format is like: "ret=OK,type=aircon,reg=eu,dst=1,ver=1_2_54"
func DecodeResponse(body string) (RawRecord, error) {
	parts := strings.Split(strings.TrimSpace(body), ",")
	if len(parts) == 0 || !strings.HasPrefix(parts[0], statusPrefix) {
		return nil, NewParseError("response does not start with "+statusPrefix, nil)
	}

	switch status := parts[0][len(statusPrefix):]; status {
	case StatusOK:
	case StatusParamNG:
		return nil, NewParameterError()
	case StatusAdvancedNG:
		return nil, NewAdvancedError()
	default:
		return nil, NewStatusError(status)
	}

	record := make(RawRecord, len(parts)-1)
	for _, pair := range parts[1:] {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		record[unescape(kv[0])] = unescape(kv[1])
	}

	return record, nil
}

// unescape percent-decodes s, keeping the original text when an escape is invalid.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// EncodeQuery renders params as a percent-encoded query string sorted by key.
func EncodeQuery(params RawRecord) string {
	q := make(url.Values, len(params))
	for key, value := range params {
		q.Set(key, value)
	}
	return q.Encode()
}
