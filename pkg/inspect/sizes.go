package inspect

import (
	"math"
	"strconv"
	"unsafe"

	"github.com/sonemaro/godoctor/pkg/report"
)

func (i *Inspector) showSizes(w *report.Writer) error {
	w.Printf("math.MaxInt: %d, %s", math.MaxInt, sizeIndication(uint64(math.MaxInt)))
	w.Printf("strconv.IntSize: %d bits", strconv.IntSize)
	w.Printf("uintptr size: %d bytes", unsafe.Sizeof(uintptr(0)))
	w.Printf("pointer size: %d bytes", unsafe.Sizeof(&i))
	return nil
}

func sizeIndication(maxInt uint64) string {
	switch maxInt {
	case math.MaxInt64:
		return "indicating 64-bit"
	case math.MaxInt32:
		return "indicating 32-bit"
	default:
		return "not sure what that means"
	}
}
