//go:build linux
// +build linux

package uapi

import "unsafe"

// DmaHeapAllocationData mirrors struct dma_heap_allocation_data from
// include/uapi/linux/dma-heap.h
type DmaHeapAllocationData struct {
	Len       uint64
	Fd        uint32
	FdFlags   uint32
	HeapFlags uint64
}

const DMA_HEAP_IOC_MAGIC = 'H'

// DMA_HEAP_IOCTL_ALLOC is _IOWR(DMA_HEAP_IOC_MAGIC, 0x0, struct dma_heap_allocation_data)
var DMA_HEAP_IOCTL_ALLOC = hostLayout.iowr(DMA_HEAP_IOC_MAGIC, 0x0, unsafe.Sizeof(DmaHeapAllocationData{}))
