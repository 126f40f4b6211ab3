//go:build darwin

package app

func machineStateDir() string { return "/Library/Application Support/agentkey" }
