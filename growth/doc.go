// Package growth simulates appending to a dynamic array whose backing
// storage grows geometrically, making the amortized cost of append visible.
//
// 🚀 What is simulated?
//
//	A logical array tracks (size, capacity). Appending when size == capacity
//	first triggers a resize: capacity is multiplied by the growth factor
//	(2 by default) and every existing element is conceptually copied,
//	costing O(capacity). Then the value is appended in O(1).
//
//	Appending 1..6 with initial capacity 2:
//	  size 2 → resize 2→4 (copy 2)
//	  size 4 → resize 4→8 (copy 4)
//	  final: [1 2 3 4 5 6], capacity 8, total copy cost 6
//
// ✨ Why doubling?
//
//	Resizes happen at sizes c, 2c, 4c, … so the total copy cost for n
//	appends is below 2n: O(1) amortized per append, even though a single
//	append can cost O(n).
//
// ⚙️ Usage:
//
//	res, err := growth.Simulate(6,
//	  growth.WithInitialCapacity(2),
//	  growth.WithOnResize(func(ev growth.ResizeEvent) { fmt.Println(ev) }),
//	)
//
// Hooks are purely observational; the returned Result carries the same
// resize history for programmatic use.
package growth
