package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindObject decodes the request body into a generic JSON object. Endpoints
// with open schemas use this so caller-supplied extension fields survive
// verbatim into the stored document.
func bindObject(c echo.Context) (map[string]any, error) {
	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return body, nil
}

// popString removes key from the object and returns its string value. A
// missing or non-string value yields "" and leaves validation to the schema.
func popString(body map[string]any, key string) string {
	v, ok := body[key]
	if !ok {
		return ""
	}
	delete(body, key)
	s, _ := v.(string)
	return s
}
