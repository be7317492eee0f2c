package client

import (
	"net/url"
	"strconv"
	"strings"
)

// BuildDataURL constructs the paginated /data query URL for the given dataset
// IDs and time range. Pure string construction: identical inputs always yield
// an identical URL.
func BuildDataURL(baseURL string, datasetIDs []string, startTime, endTime string, pageSize, page int) string {
	params := url.Values{}
	params.Set("datasets", strings.Join(datasetIDs, ","))
	params.Set("startTime", startTime)
	params.Set("endTime", endTime)
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(page))
	return strings.TrimSuffix(baseURL, "/") + "/data?" + params.Encode()
}
