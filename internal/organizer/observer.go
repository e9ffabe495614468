package organizer

// Observer receives per-file progress callbacks. All methods run on the
// organizer's goroutine; implementations must not block for long.
type Observer interface {
	// RunStarted is called once with the number of accepted candidates.
	RunStarted(total int)
	FileStarted(path string)
	FileFinished(item Item)
}

type nopObserver struct{}

func (nopObserver) RunStarted(int) {}

func (nopObserver) FileStarted(string) {}

func (nopObserver) FileFinished(Item) {}
