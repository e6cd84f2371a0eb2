package game

import (
	"fmt"
	"testing"

	"github.com/coder/quartz"
)

// fixedTargets hands out targets in order, repeating the last one
type fixedTargets struct {
	targets []int
	next    int
}

func (f *fixedTargets) Target() int {
	target := f.targets[min(f.next, len(f.targets)-1)]
	f.next++
	return target
}

// sequentialIDs names rounds round-1, round-2, ...
type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) Next() string {
	s.n++
	return fmt.Sprintf("round-%d", s.n)
}

func newTestController(t *testing.T, targets ...int) (*Controller, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	c := NewController(&fixedTargets{targets: targets}, WithClock(clock), WithIDSource(&sequentialIDs{}))
	return c, clock
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.EventType())
	}
	return types
}
