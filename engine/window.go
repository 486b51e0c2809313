package engine

// Window keeps the last size match results, dropping the oldest first.
type Window struct {
	results []bool
	next    int
	full    bool
}

func NewWindow(size int) *Window {
	if size <= 0 {
		panic("window size must be positive")
	}
	return &Window{results: make([]bool, size)}
}

func (w *Window) Add(win bool) {
	w.results[w.next] = win
	w.next = (w.next + 1) % len(w.results)
	if w.next == 0 {
		w.full = true
	}
}

func (w *Window) Len() int {
	if w.full {
		return len(w.results)
	}
	return w.next
}

// Rate is the share of wins in the window, 0 when it is empty.
func (w *Window) Rate() float64 {
	n := w.Len()
	if n == 0 {
		return 0
	}
	wins := 0
	for _, win := range w.results[:n] {
		if win {
			wins++
		}
	}
	return float64(wins) / float64(n)
}
