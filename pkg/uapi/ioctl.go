//go:build linux
// +build linux

package uapi

import "fmt"

// Ioctl is an encoded ioctl request code, see include/uapi/asm-generic/ioctl.h
type Ioctl uintptr

// nr and type fields are 8 bits wide on every arch, only size and dir differ
const (
	iocNRBits    = 8
	iocTypeBits  = 8
	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
)

type iocLayout struct {
	sizeBits uint
	dirBits  uint
	read     uintptr
	write    uintptr
}

var (
	// asm-generic/ioctl.h
	asmGenericLayout = iocLayout{sizeBits: 14, dirBits: 2, read: 2, write: 1}
	// arch/{mips,powerpc,sparc}/include/uapi/asm/ioctl.h
	asmMipsLayout = iocLayout{sizeBits: 13, dirBits: 3, read: 2, write: 4}
)

func (l iocLayout) dirShift() uint {
	return iocSizeShift + l.sizeBits
}

func (l iocLayout) encode(dir, t, nr, size uintptr) Ioctl {
	return Ioctl(dir<<l.dirShift() |
		size<<iocSizeShift |
		t<<iocTypeShift |
		nr<<iocNRShift)
}

func (l iocLayout) iowr(t, nr, size uintptr) Ioctl {
	return l.encode(l.read|l.write, t, nr, size)
}

func field(c Ioctl, shift, bits uint) uintptr {
	return (uintptr(c) >> shift) & (1<<bits - 1)
}

func (c Ioctl) Dir() uintptr {
	return field(c, hostLayout.dirShift(), hostLayout.dirBits)
}

func (c Ioctl) Type() uintptr {
	return field(c, iocTypeShift, iocTypeBits)
}

func (c Ioctl) Nr() uintptr {
	return field(c, iocNRShift, iocNRBits)
}

func (c Ioctl) Size() uintptr {
	return field(c, iocSizeShift, hostLayout.sizeBits)
}

// String renders the decoded fields in the same shape as the _IOC macro arguments.
func (c Ioctl) String() string {
	dir := ""
	if c.Dir()&hostLayout.read != 0 {
		dir += "R"
	}
	if c.Dir()&hostLayout.write != 0 {
		dir += "W"
	}
	if dir == "" {
		dir = "-"
	}
	return fmt.Sprintf("_IOC(%s, '%c', 0x%x, %d)", dir, rune(c.Type()), c.Nr(), c.Size())
}
