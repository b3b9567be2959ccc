package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	Yaml    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("MICA_DEBUG_CONVERT")
	d.Yaml = boolEnv("MICA_DEBUG_YAML")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}

func Yaml() bool {
	return d.Yaml
}
