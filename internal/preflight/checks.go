package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CheckSourceDir verifies that the source root exists, is a directory, and can
// be listed.
func CheckSourceDir(path string) Result {
	const name = "Source directory"

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckDestinationDir verifies that the destination root is a writable
// directory, or, when it does not exist yet, that its nearest existing
// ancestor allows creating it.
func CheckDestinationDir(path string) Result {
	const name = "Destination directory"

	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
		}
		if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
	}
	if !os.IsNotExist(err) {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}

	ancestor := nearestExisting(filepath.Dir(path))
	if ancestor == "" {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing parent)", path)}
	}
	if err := unix.Access(ancestor, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, ancestor, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
}

// CheckDistinct rejects a destination equal to the source root.
func CheckDistinct(source, destination string) Result {
	const name = "Distinct roots"

	if filepath.Clean(source) == filepath.Clean(destination) {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: source and destination are the same)", source)}
	}
	return Result{Name: name, Passed: true, Detail: "source and destination differ"}
}

func nearestExisting(dir string) string {
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if info.IsDir() {
				return dir
			}
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
