//go:build !windows && !darwin

package app

func machineStateDir() string { return "/var/lib/agentkey" }
