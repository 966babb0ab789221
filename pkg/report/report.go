//go:build linux
// +build linux

package report

import (
	"dmaheapconsts/pkg/uapi"
	"fmt"
	"io"
)

type Constant struct {
	Name  string
	Value uint64
}

// Constants returns the reported values in their fixed output order.
func Constants() []Constant {
	return []Constant{
		{Name: "DMA_HEAP_IOCTL_ALLOC", Value: uint64(uapi.DMA_HEAP_IOCTL_ALLOC)},
		{Name: "O_RDWR", Value: uint64(uapi.O_RDWR)},
		{Name: "O_CLOEXEC", Value: uint64(uapi.O_CLOEXEC)},
	}
}

func Write(w io.Writer, consts []Constant) error {
	for _, c := range consts {
		_, err := fmt.Fprintf(w, "%s: 0x%x\n", c.Name, c.Value)
		if err != nil {
			return fmt.Errorf("write %s: %w", c.Name, err)
		}
	}
	return nil
}
