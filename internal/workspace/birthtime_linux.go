//go:build linux

package workspace

import (
	"time"

	"golang.org/x/sys/unix"
)

// birthTime reads the directory's birth time via statx. Older kernels and
// filesystems without btime support report it as unavailable.
func birthTime(path string) (time.Time, bool) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, false
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}
