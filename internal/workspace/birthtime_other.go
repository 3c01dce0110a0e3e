//go:build !linux && !darwin && !windows

package workspace

import "time"

func birthTime(path string) (time.Time, bool) {
	return time.Time{}, false
}
