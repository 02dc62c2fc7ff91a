package adapter

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// decodeJSON unmarshals a successful response body into out.
func decodeJSON(resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// setPageParams attaches the shared page/per_page pagination parameters,
// omitting zero values so the backend applies its defaults.
func setPageParams(req *resty.Request, page, perPage int) *resty.Request {
	if page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		req.SetQueryParam("per_page", strconv.Itoa(perPage))
	}
	return req
}

func itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}
