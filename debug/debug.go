package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Encode  bool
	Decode  bool
	Format  bool
	Profile bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("JSONV_DEBUG_ENCODE")
	d.Decode = boolEnv("JSONV_DEBUG_DECODE")
	d.Format = boolEnv("JSONV_DEBUG_FORMAT")
	d.Profile = boolEnv("JSONV_DEBUG_PROFILE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Format() bool {
	return d.Format
}
func Profile() bool {
	return d.Profile
}
