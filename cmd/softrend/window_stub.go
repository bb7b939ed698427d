//go:build !cgo

package main

import (
	"errors"

	"github.com/taigrr/softrend/pkg/viewer"
)

func runWindow(_ *viewer.Context, _ viewer.Config, _ int) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
