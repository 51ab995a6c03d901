// Package database provides the SQLite store behind the scheduler.
//
// Everything lives in one key/value table, metadata. The playlist is stored
// as a JSON array of songs under PlaylistKey; schedules are not persisted.
//
// The database uses WAL mode and creates its schema on open.
package database
