package plotter_test

import (
	"testing"
	"time"

	"github.com/pickupplot/pickupplot/plotter"
)

func TestCloseAndWait(t *testing.T) {
	b := plotter.NewBroker()
	go func() {
		<-b.CloseGUI
		close(b.FinishedGUI)
	}()
	if !b.CloseAndWait(time.Second) {
		t.Fatalf("CloseAndWait timed out although the GUI finished")
	}
}

func TestCloseAndWaitTimesOut(t *testing.T) {
	b := plotter.NewBroker()
	if b.CloseAndWait(10 * time.Millisecond) {
		t.Fatalf("CloseAndWait returned true with no GUI running")
	}
	// the request stays queued for a GUI that starts late, and a second
	// request does not block
	if b.CloseAndWait(10*time.Millisecond) || len(b.CloseGUI) != 1 {
		t.Fatalf("close request lost: %d queued", len(b.CloseGUI))
	}
}

func TestTrySend(t *testing.T) {
	c := make(chan int, 1)
	if !plotter.TrySend(c, 1) {
		t.Fatalf("TrySend failed on an empty channel")
	}
	if plotter.TrySend(c, 2) {
		t.Fatalf("TrySend succeeded on a full channel")
	}
}
