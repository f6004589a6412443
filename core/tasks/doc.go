// Package tasks runs server lifecycle commands in the background.
//
// Start, stop and restart can take minutes, so HTTP handlers submit them to a
// Tracker and return immediately. Each submission gets a uuid; its State moves
// from pending to running to succeeded or failed, alongside the command's exit
// status and output. Callers poll with Get or block with Wait. Only the most
// recent finished tasks (Config.History) are retained.
package tasks
