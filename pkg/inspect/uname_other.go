//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package inspect

import (
	"os"
	"runtime"
)

// readUname builds what it can without a uname syscall.
func readUname() (Uname, error) {
	host, err := os.Hostname()
	if err != nil {
		return Uname{}, err
	}

	return Uname{
		Sysname:  runtime.GOOS,
		Nodename: host,
		Release:  "unknown",
		Version:  "unknown",
		Machine:  runtime.GOARCH,
	}, nil
}
