//go:build !linux

package fileutil

import (
	"errors"
	"syscall"
)

func renameNoReplace(string, string) error {
	return errNoReplaceUnsupported
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
