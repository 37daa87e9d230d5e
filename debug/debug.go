package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Render bool
	Href   bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Render = boolEnv("HICCUP_DEBUG_RENDER")
	d.Href = boolEnv("HICCUP_DEBUG_HREF")
	d.Parse = boolEnv("HICCUP_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Render() bool {
	return d.Render
}
func Href() bool {
	return d.Href
}
func Parse() bool {
	return d.Parse
}
