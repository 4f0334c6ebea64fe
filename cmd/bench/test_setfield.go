package main

import (
	"sync/atomic"
	"time"
)

// TestSetField writes formulas that go through token substitution.
func TestSetField(c Config) {

	client := NewClient()
	session := CreateSession(client, c.Base)

	items := c.N

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for atomic.AddInt64(&items, -1) >= 0 {
			Action(client, c.Base, session, "setField", JSON{
				"index": 0,
				"field": "formula",
				"value": `\forall x (P x \implies \exists y Q y)`,
			})
		}
	})

	Report("written", c.N, time.Since(t0))
}
