package main

import (
	"fmt"
	"strings"

	"github.com/ext-sakamoro/alicetxt/compress"
)

func parseLevel(s string) (compress.Level, error) {
	switch strings.ToLower(s) {
	case "fast":
		return compress.Fast, nil
	case "balanced", "":
		return compress.Balanced, nil
	case "best":
		return compress.Best, nil
	default:
		return 0, fmt.Errorf("unknown level %q (want fast, balanced, or best)", s)
	}
}
