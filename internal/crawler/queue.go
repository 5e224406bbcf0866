package crawler

import "sync"

// Worklist holds URLs pending a visit, with deduplication against every URL
// ever added. It pops in LIFO order so the traversal is depth-first; callers
// push a page's links in reverse document order so they pop in document
// order.
type Worklist struct {
	mu      sync.Mutex
	items   []workItem
	visited map[string]bool
}

type workItem struct {
	URL   string
	Depth int
}

// NewWorklist creates an empty worklist.
func NewWorklist() *Worklist {
	return &Worklist{
		items:   make([]workItem, 0),
		visited: make(map[string]bool),
	}
}

// Add schedules a URL at the given depth if it has not been seen before.
// The URL is normalized first; the visited set only ever grows.
func (w *Worklist) Add(rawURL string, depth int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	normalized := NormalizeURL(rawURL)
	if normalized == "" {
		return false
	}

	if w.visited[normalized] {
		return false
	}

	w.visited[normalized] = true
	w.items = append(w.items, workItem{URL: normalized, Depth: depth})
	return true
}

// Pop removes and returns the most recently added URL.
func (w *Worklist) Pop() (string, int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.items) == 0 {
		return "", 0, false
	}

	item := w.items[len(w.items)-1]
	w.items = w.items[:len(w.items)-1]
	return item.URL, item.Depth, true
}

// Len returns the number of pending items.
func (w *Worklist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// IsVisited checks whether a URL has ever been added.
func (w *Worklist) IsVisited(rawURL string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visited[NormalizeURL(rawURL)]
}
