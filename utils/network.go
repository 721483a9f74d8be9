package utils

import (
	"path/filepath"
	"strings"
	"unicode"
)

// IsNetworkPath guesses whether dir lives on a network mount. Every image is
// decoded many times during matching, which is slow over the network.
func IsNetworkPath(dir string) bool {
	// Check Windows UNC paths first, before converting to absolute path
	if strings.HasPrefix(dir, "//") || strings.HasPrefix(dir, `\\`) {
		return true
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return false
	}

	networkPrefixes := []string{
		"/mnt/",     // Linux NFS/SMB mounts
		"/media/",   // Linux removable/network media
		"/Volumes/", // macOS network volumes
	}

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(absPath+"/", prefix) && absPath+"/" != prefix {
			return true
		}
	}

	// indicators must be whole words, so "confs" is not "nfs"
	words := strings.FieldsFunc(strings.ToLower(absPath), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		switch word {
		case "nfs", "cifs", "smb", "webdav", "sftp":
			return true
		}
	}

	return false
}
