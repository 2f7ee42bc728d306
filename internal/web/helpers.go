package web

import (
	"html"
	"strconv"
)

func itoa(value int) string {
	return strconv.Itoa(value)
}

func escape(text string) string {
	return html.EscapeString(text)
}
