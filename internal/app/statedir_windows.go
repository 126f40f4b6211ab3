//go:build windows

package app

import (
	"os"
	"path/filepath"
)

func machineStateDir() string {
	if dir := os.Getenv("ProgramData"); dir != "" {
		return filepath.Join(dir, "agentkey")
	}
	return `C:\ProgramData\agentkey`
}
