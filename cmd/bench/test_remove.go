package main

import (
	"fmt"
	"sync/atomic"
	"time"
)

func TestRemove(c Config) {

	client := NewClient()
	session := CreateSession(client, c.Base)

	fmt.Println("Preload rows...")
	preload := c.N
	Parallel(c.Workers, func() {
		for atomic.AddInt64(&preload, -1) >= 0 {
			Action(client, c.Base, session, "insertAt", JSON{"index": 0})
		}
	})

	// the session starts with one blank row, keep it
	items := c.N

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for atomic.AddInt64(&items, -1) >= 0 {
			Action(client, c.Base, session, "removeNew", JSON{"index": 0})
		}
	})

	Report("removed", c.N, time.Since(t0))
}
