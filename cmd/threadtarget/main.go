// threadtarget is a debugger test target for thread enumeration and
// per-thread stack inspection. Invoked as `threadtarget --threads N` it
// makes N OS threads simultaneously alive and stack-walkable (the initial
// thread counts as the first); any other invocation shape means a single
// thread. The workers share no state and return immediately, so the only
// observable property is the set of live threads, free of any
// concurrency-correctness noise.
package main

import (
	"os"
	"runtime"
	"strconv"
	"sync"
)

//go:noinline
func funcA() {
}

// A thread count is recognized only when exactly two arguments follow the
// program name and the first is the literal flag; anything else silently
// falls back to a single thread.
func parseThreadCount(argv []string) int {
	if len(argv) == 3 && argv[1] == "--threads" {
		if n, err := strconv.Atoi(argv[2]); err == nil {
			return n
		}
	}
	return 1
}

//go:noinline
func worker(wg *sync.WaitGroup) {
	defer wg.Done()

	// pin the goroutine to its own OS thread so a debugger attaching here
	// sees one native thread per worker; the thread is released when the
	// goroutine exits
	runtime.LockOSThread()
	funcA()
}

func spawnAndJoin(threadCount int) {
	// the initial thread already exists, only the extras get spawned
	var wg sync.WaitGroup
	for i := 1; i < threadCount; i++ {
		wg.Add(1)
		go worker(&wg)
	}
	wg.Wait()
}

func main() {
	spawnAndJoin(parseThreadCount(os.Args))
}
