//go:build unix

package render

import (
	"os"

	"golang.org/x/sys/unix"
)

// fileMeta reads the open flags of the descriptor behind f. A closed file
// cannot be introspected.
func fileMeta(f *os.File) (StreamMeta, bool) {
	if f == nil {
		return StreamMeta{}, false
	}

	raw, err := f.SyscallConn()
	if err != nil {
		return StreamMeta{}, false
	}

	var flags int
	var flagsErr error
	if err := raw.Control(func(fd uintptr) {
		flags, flagsErr = unix.FcntlInt(fd, unix.F_GETFL, 0)
	}); err != nil || flagsErr != nil {
		return StreamMeta{}, false
	}

	seekable := false
	if info, err := f.Stat(); err == nil {
		seekable = info.Mode().IsRegular()
	}

	return StreamMeta{
		URI:        f.Name(),
		Mode:       openMode(flags),
		Blocked:    flags&unix.O_NONBLOCK == 0,
		Seekable:   seekable,
		StreamType: "STDIO",
	}, true
}

// openMode maps open flags to an fopen-style mode string
func openMode(flags int) string {
	appending := flags&unix.O_APPEND != 0
	switch flags & unix.O_ACCMODE {
	case unix.O_WRONLY:
		if appending {
			return "a"
		}
		return "w"
	case unix.O_RDWR:
		if appending {
			return "a+"
		}
		return "r+"
	default:
		return "r"
	}
}
