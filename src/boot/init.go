package boot

import (
	"log"
	"os"

	"chb/src/config"
	"chb/src/lib"
	"chb/src/store"
	"chb/src/worker"
)

// InitStore primes the shared record store before the router accepts traffic,
// so concurrent first requests never race its construction.
func InitStore() {
	store.GetStore()
}

// InitWorker starts the deferred-task queue that carries all post-response
// work (packaging, rendering, notification dispatch).
func InitWorker() {
	worker.GetQueue()
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}

// InitDirs makes sure the uploads directory exists before the first multipart
// submission arrives.
func InitDirs() {
	dir := config.GetUploadsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Could not create uploads dir %s: %s\n", dir, err.Error())
	}
}
