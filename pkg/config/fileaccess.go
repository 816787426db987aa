// pkg/config/fileaccess.go
package config

import "os"

// checkReadOnly verifies that a filesystem-backed secret exists, is readable,
// and carries no write permission. Permission bits come from a single stat;
// no file contents are read.
func checkReadOnly(opt, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fileAccess(opt, path, "does not exist or cannot be accessed")
	}
	if !info.Mode().IsRegular() {
		return fileAccess(opt, path, "is not a regular file")
	}
	perm := info.Mode().Perm()
	if perm&0o444 == 0 {
		return fileAccess(opt, path, "is not readable")
	}
	if perm&0o222 != 0 {
		return fileAccess(opt, path, "must not be writable")
	}
	return nil
}
