package protect

// Options configures NewMachineScope. Windows ignores both fields.
type Options struct {
	// SecretFile holds the machine secret; created with mode 0640 on first use.
	SecretFile string
	// MachineIDFile overrides the machine id lookup. Empty means the
	// systemd/dbus locations, then the hostname.
	MachineIDFile string
}

var defaultMachineIDFiles = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}
