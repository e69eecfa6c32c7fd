package utils

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SweepTempDir removes upload files in dir that were last written more than
// maxAge ago, for example by a process that crashed mid-request. Younger files
// may belong to a request another instance is still serving and are left alone,
// as is anything that is not an upload.
func SweepTempDir(dir string, maxAge time.Duration) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read temp directory %s: %v", dir, err)
		}
		return
	}

	cutoff := time.Now().Add(-maxAge)
	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), tempFilePrefix) {
			continue
		}
		info, err := file.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, file.Name())); err != nil {
			log.Printf("Failed to remove file %s: %v", file.Name(), err)
		}
	}
}
