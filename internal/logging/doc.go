// Package logging provides leveled logging for the music scheduler.
//
// Messages are written through the standard library logger with a level tag
// prefix ([DEBUG], [INFO], [WARN], [ERROR]). The active level is resolved once
// from the environment:
//
//   - DEBUG=1|true|yes|on forces debug output
//   - LOG_LEVEL=debug|info|warn|error selects the level explicitly
//
// The default level is info. SetLevel overrides the environment, which is
// what startup does after configuration has been validated.
package logging
