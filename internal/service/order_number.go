package service

import (
	"strings"
	"time"

	"github.com/nanorand/nanorand"
)

const orderNumberPrefix = "ORD-"

// NewOrderNumber returns ORD-YYYYMMDDHHMMSS-XXXXXX.
func NewOrderNumber(now time.Time) (string, error) {
	suffix, err := nanorand.Gen(6)
	if err != nil {
		return "", err
	}
	return orderNumberPrefix + now.UTC().Format("20060102150405") + "-" + strings.ToUpper(suffix), nil
}
