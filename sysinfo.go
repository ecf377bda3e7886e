package vpnmon_builder

import "golang.org/x/sys/unix"

const (
	KB int64 = 1 << (10 * (iota + 1))
	MB
	GB
	TB
)

func osFileWriteAccess(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

func osFileExecAccess(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}

func osDiskSpace(path string) int64 {
	fs := unix.Statfs_t{}
	if err := unix.Statfs(path, &fs); err != nil {
		return -1
	}
	return int64(fs.Bavail) * fs.Bsize
}
