package main

import (
	"fmt"
	"sync/atomic"
	"time"
)

// TestInsert inserts rows at the top so every call renumbers the whole set.
func TestInsert(c Config) {

	client := NewClient()
	session := CreateSession(client, c.Base)

	items := c.N

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(1 * time.Second):
				fmt.Println("items:", atomic.LoadInt64(&items))
			}
		}
	}()

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for atomic.AddInt64(&items, -1) >= 0 {
			Action(client, c.Base, session, "insertAt", JSON{"index": 0})
		}
	})

	Report("inserted", c.N, time.Since(t0))
}
