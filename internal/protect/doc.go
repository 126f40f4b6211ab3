// Package protect supplies the machine-scoped encryption capability that
// keeps the key file opaque at rest.
//
// On Windows, NewMachineScope uses DPAPI in local-machine mode: any process on
// the host can unprotect, and no other host can. Elsewhere it returns a Sealer
// keyed by a machine secret file and bound to the machine id. The secret is
// created 0640 at a machine-wide path, so root and the owning group count as
// authorised on the host whichever user created the key.
//
// Every Unprotect failure is reported as domain.ErrCryptographicFailure.
package protect
