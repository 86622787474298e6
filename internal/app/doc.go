// Package app wires configuration, log loading, scanning and rendering into a
// single guestdump run.
//
// # Flow
//
//	Run()
//	  ├─> config.Load()        optional TOML settings
//	  ├─> config.LogPath()     $HOME/VirtualBox VMs/RustOS/Logs/VBox.log
//	  ├─> logtail.Load()       whole file, CR stripped
//	  ├─> scan.Scan()          banner → summary → marker → fields
//	  ├─> render.Lines()       "No errors." or summary + key = value
//	  └─> render.Write()       stdout
//	      or ui.Run()          interactive pager (--pager)
//
// # Errors
//
// Run returns a *scan.ScriptError after printing the partial report when the
// log does not have the expected layout. Callers turn it into exit status 2
// with scan.ExitStatus. Every other error is returned before anything is
// printed to stdout.
//
// # Logging
//
// Progress goes through the standard log package. The command discards it
// unless --verbose is set.
package app
