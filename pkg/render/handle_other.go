//go:build !unix

package render

import "os"

// fileMeta describes f without descriptor flags, which are not available
// on this platform. A closed file cannot be introspected.
func fileMeta(f *os.File) (StreamMeta, bool) {
	if f == nil {
		return StreamMeta{}, false
	}

	info, err := f.Stat()
	if err != nil {
		return StreamMeta{}, false
	}

	return StreamMeta{
		URI:        f.Name(),
		Mode:       "r+",
		Blocked:    true,
		Seekable:   info.Mode().IsRegular(),
		StreamType: "STDIO",
	}, true
}
