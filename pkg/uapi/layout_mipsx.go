//go:build linux && (mips || mipsle || mips64 || mips64le || ppc64 || ppc64le || sparc64)
// +build linux
// +build mips mipsle mips64 mips64le ppc64 ppc64le sparc64

package uapi

var hostLayout = asmMipsLayout
