//go:build linux
// +build linux

package uapi

import "golang.org/x/sys/unix"

// open(2) flags as the target's headers define them
const (
	O_RDWR    = unix.O_RDWR
	O_CLOEXEC = unix.O_CLOEXEC
)
