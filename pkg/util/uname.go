//go:build linux
// +build linux

package util

import (
	"golang.org/x/sys/unix"
)

type UnameInfo struct {
	SysName string
	Release string
	Version string
	Machine string
}

func GetOSUnamer() (*UnameInfo, error) {
	u := unix.Utsname{}
	e := unix.Uname(&u)
	if e != nil {
		return nil, e
	}
	ui := UnameInfo{}
	ui.SysName = charsToString(u.Sysname[:])
	ui.Release = charsToString(u.Release[:])
	ui.Version = charsToString(u.Version[:])
	ui.Machine = charsToString(u.Machine[:])

	return &ui, nil
}

func charsToString(ca []byte) string {
	var lens int
	for ; lens < len(ca); lens++ {
		if ca[lens] == 0 {
			break
		}
	}
	return string(ca[0:lens])
}
