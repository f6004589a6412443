// Package manager talks to the external Minecraft server manager CLI.
//
// The package is split into three layers:
//
//   - Runner executes the CLI. ExecRunner shells out with a context bound
//     timeout; CannedRunner answers with fixed output for debug mode.
//   - Pure parsers turn CLI text into values: ParseStatus (`server list`),
//     ParseWorlds (`<server> worlds list`) and ParseConfig (`config`).
//   - Client combines both, enforcing that query commands exit zero
//     (ErrToolFailure otherwise) while lifecycle commands only report their
//     exit status.
//
// # Status grammar
//
//	[ ACTIVE ] "<name>" is running.
//	[ INACTIVE ] "<name>" is stopped.
//
// Any other line is noise. The resulting Registry keeps CLI order.
package manager
