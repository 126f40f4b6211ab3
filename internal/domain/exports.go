package domain

import (
	interfaces "agentkey/internal/domain/interfaces"
	types "agentkey/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyMaterial        = types.KeyMaterial
	KeyPair            = types.KeyPair
	PersistedKeyRecord = types.PersistedKeyRecord
)

// RecordVersion is the current PersistedKeyRecord layout.
const RecordVersion = types.RecordVersion

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Protector    = interfaces.Protector
	KeyGenerator = interfaces.KeyGenerator
	KeyFileStore = interfaces.KeyFileStore
	KeyManager   = interfaces.KeyManager
)
