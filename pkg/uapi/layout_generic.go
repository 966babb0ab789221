//go:build linux && (arm || arm64 || 386 || amd64 || riscv64 || loong64 || s390x)
// +build linux
// +build arm arm64 386 amd64 riscv64 loong64 s390x

package uapi

var hostLayout = asmGenericLayout
