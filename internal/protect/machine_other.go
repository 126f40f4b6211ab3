//go:build !windows

package protect

import "agentkey/internal/domain"

// NewMachineScope returns a Sealer keyed by the machine secret file and
// scoped to this host's machine id.
func NewMachineScope(opts Options) (domain.Protector, error) {
	secret, err := LoadOrCreateSecret(opts.SecretFile)
	if err != nil {
		return nil, err
	}
	id, err := MachineID(opts.MachineIDFile)
	if err != nil {
		return nil, err
	}
	return NewSealer(secret, id)
}
