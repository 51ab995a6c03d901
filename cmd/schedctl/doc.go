// Command schedctl drives a running music scheduler from the shell.
//
// Usage:
//
//	schedctl [--server URL] [--json] <command> <subcommand> [arguments]
//
// Commands:
//
//	songs list                      show the playlist in play order
//	songs add URL                   add one YouTube link
//	songs bulk [FILE|-]             add every link in FILE (one per line), or stdin
//	songs upload FILE...            upload local audio files
//	songs rm ID                     remove a song
//
//	schedules list                  show schedules with their status
//	schedules add START STOP        add a schedule, times as HH:MM
//	schedules edit ID START STOP    change a schedule's window
//	schedules rm ID                 delete a schedule
//	schedules test ID               start a schedule now
//	schedules stop ID               stop a schedule now
//
//	player status                   show what is playing
//	player toggle|next|prev|shuffle control playback
//	player play INDEX               play the song at INDEX of the play order
//	player volume LEVEL             set the volume, 0-100
//
//	health                          show server health
//
// The server address comes from --server, then SCHEDCTL_SERVER (also read
// from a .env file), then http://localhost:8080.
package main
