// Package scan locates a guru meditation in a VirtualBox log and extracts the
// guest register state recorded at power off.
//
// # Scan Order
//
// Scan is a single forward pass with a cursor that never moves backward:
//
//  1. FindBanner: first line containing a run of 40 '!' characters.
//     No banner means the log is clean and scanning stops.
//  2. Summary: starting at the banner line, the first of the next eleven
//     lines whose tokens (minus the timestamp and any "!!" fragments) are
//     non-empty.
//  3. FindMarker: first line at or after the summary containing
//     "Guest state at power off".
//  4. Fields: key=value tokens from the lines at marker+2 and marker+3.
//
// # Expected Layout
//
// A typical dump looks like this:
//
//	00:00:05.120 !!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!
//	00:00:05.120 !!
//	00:00:05.120 !!         VCPU0: Guru Meditation -2701 (VERR_TRPM_PANIC)
//	...
//	00:00:05.300 Guest state at power off:
//	00:00:05.300
//	00:00:05.300 rax=00000000cafebabe rbx=0000000000000000 ...
//	00:00:05.300 rip=ffff80000000dead rsp=... iopl=0 nv up di pl ...
//
// The register lines are taken at fixed offsets from the marker. Nothing in
// the log format promises this; it is what the hypervisor writes today.
//
// # Errors
//
// A log that has a banner but breaks the layout yields a *ScriptError.
// ErrSummaryNotFound (code 1) and ErrMarkerNotFound (code 2) both map to exit
// status 2 through ExitStatus.
package scan
