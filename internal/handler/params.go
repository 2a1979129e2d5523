package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// ids ride in JSON as strings; int64 loses precision in JS numbers
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
