/*
Package workers sizes the goroutine pools used for outbound lookups.

runtime.NumCPU reports the host's CPUs even inside a CPU-limited container,
so sizing is based on GOMAXPROCS, which Go sets from the cgroup limit.

Title lookups spend nearly all their time waiting on the network, so they
use the I/O multiplier:

	limit := workers.ForIO(8) // 2 per available CPU, at most 8

Operators can pin the count with the TITLE_FETCH_WORKERS environment
variable. The override is still capped by the caller's limit:

	TITLE_FETCH_WORKERS=2
*/
package workers
