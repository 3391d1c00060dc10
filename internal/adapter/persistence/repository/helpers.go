package repository

import (
	"errors"
	"os"
	"strconv"
)

// ErrDuplicateOrderID is returned by Create when the generated order code is
// already taken; the usecase regenerates and retries.
var ErrDuplicateOrderID = errors.New("duplicate order id")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
