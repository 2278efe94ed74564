//go:build !linux

package sysinfo

import "errors"

func statDisk(string) (uint64, uint64, error) {
	return 0, 0, errors.New("disk statistics are only read on linux")
}
