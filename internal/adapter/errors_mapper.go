package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/rafaelssenna/sol-client/models"
)

// mapHTTPError converts a non-2xx response into a sentinel error wrapped with
// the backend's human-readable detail message, which forms display inline.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// errorDetail extracts the backend's {"detail": ...} message, falling back to
// the raw body and then the status text.
func errorDetail(resp *resty.Response) string {
	var apiErr models.APIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Detail != "" {
		return apiErr.Detail
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
