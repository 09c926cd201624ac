package harness

import (
	"fmt"
	"revlist/parallel"
	"slices"
)

const (
	smallSize      = 10
	drainSize      = 100
	guardedWorkers = 4
)

// Scenario is a named sequence of list operations with its own checks.
type Scenario struct {
	Name        string
	Description string
	run         func(run *scenarioRun) error
}

var builtinScenarios = []Scenario{
	{"insert-order", "insert 1..10, list reads 10..1", insertOrder},
	{"remove-all", "insert 1..10 then remove 1..10, list ends empty", removeAll},
	{"reverse-round-trip", "insert 1..n, reverse, remove the upper half, reverse, remove the rest", reverseRoundTrip},
	{"remove-from-empty", "remove from a fresh list reports not found", removeFromEmpty},
	{"insert-then-drain", "insert 1..100 then remove 100..1", insertThenDrain},
	{"remove-missing", "removing an absent value leaves the list unchanged", removeMissing},
	{"remove-duplicate", "only the first occurrence from the head is removed", removeDuplicate},
	{"guarded-concurrent", "concurrent inserts and removes through a guarded list", guardedConcurrent},
}

var scenarioByName = make(map[string]Scenario)

func init() {
	for _, scenario := range builtinScenarios {
		scenarioByName[scenario.Name] = scenario
	}
}

// lookupScenario returns the built-in scenario registered under name.
func lookupScenario(name string) (Scenario, bool) {
	scenario, found := scenarioByName[name]
	return scenario, found
}

// ScenarioNames lists the built-in scenarios in run order.
func ScenarioNames() []string {
	names := make([]string, len(builtinScenarios))
	for i, scenario := range builtinScenarios {
		names[i] = scenario.Name
	}
	return names
}

func insertOrder(run *scenarioRun) error {
	l := run.newList()
	if err := run.insert(l, ascending(1, smallSize)...); err != nil {
		return err
	}
	if err := run.expectSize(l, smallSize); err != nil {
		return err
	}
	return run.expectValues(l, descending(smallSize, 1))
}

func removeAll(run *scenarioRun) error {
	l := run.newList()
	if err := run.insert(l, ascending(1, smallSize)...); err != nil {
		return err
	}
	for _, v := range ascending(1, smallSize) {
		if err := run.expectRemove(l, v, true); err != nil {
			return err
		}
	}
	return run.expectSize(l, 0)
}

func reverseRoundTrip(run *scenarioRun) error {
	size := run.runner.opts.Size
	half := size / 2
	l := run.newList()

	if err := run.insert(l, ascending(1, size)...); err != nil {
		return err
	}
	if err := run.reverse(l); err != nil {
		return err
	}
	if err := run.expectValues(l, ascending(1, size)); err != nil {
		return err
	}

	for _, v := range descending(size, half+1) {
		if err := run.expectRemove(l, v, true); err != nil {
			return err
		}
	}
	if err := run.expectValues(l, ascending(1, half)); err != nil {
		return err
	}

	if err := run.reverse(l); err != nil {
		return err
	}
	if err := run.expectValues(l, descending(half, 1)); err != nil {
		return err
	}

	for _, v := range descending(half, 1) {
		if err := run.expectRemove(l, v, true); err != nil {
			return err
		}
	}
	return run.expectSize(l, 0)
}

func removeFromEmpty(run *scenarioRun) error {
	l := run.newList()
	for _, v := range []int{0, 1, -1, smallSize} {
		if err := run.expectRemove(l, v, false); err != nil {
			return err
		}
	}
	return run.expectSize(l, 0)
}

func insertThenDrain(run *scenarioRun) error {
	l := run.newList()
	if err := run.insert(l, ascending(1, drainSize)...); err != nil {
		return err
	}
	if err := run.expectValues(l, descending(drainSize, 1)); err != nil {
		return err
	}
	for _, v := range descending(drainSize, 1) {
		if err := run.expectRemove(l, v, true); err != nil {
			return err
		}
	}
	return run.expectSize(l, 0)
}

func removeMissing(run *scenarioRun) error {
	l := run.newList()
	if err := run.insert(l, ascending(1, smallSize)...); err != nil {
		return err
	}
	before := slices.Collect(l.Values())
	for _, v := range []int{0, smallSize + 1, -smallSize} {
		if err := run.expectRemove(l, v, false); err != nil {
			return err
		}
		if err := run.expectValues(l, before); err != nil {
			return err
		}
	}
	return run.expectSize(l, smallSize)
}

func removeDuplicate(run *scenarioRun) error {
	l := run.newList()
	if err := run.insert(l, 7, 1, 7, 2, 7); err != nil {
		return err
	}
	if err := run.expectRemove(l, 7, true); err != nil {
		return err
	}
	if err := run.expectValues(l, []int{2, 7, 1, 7}); err != nil {
		return err
	}
	if err := run.expectRemove(l, 7, true); err != nil {
		return err
	}
	if err := run.expectValues(l, []int{2, 1, 7}); err != nil {
		return err
	}
	return run.expectSize(l, 3)
}

func guardedConcurrent(run *scenarioRun) error {
	size := run.runner.opts.Size
	g := run.newGuarded()

	queue := parallel.CreateJobQueue(guardedWorkers, guardedWorkers)
	defer queue.Close()

	for worker := 0; worker < guardedWorkers; worker++ {
		err := queue.Add(func() error {
			for v := worker; v < size; v += guardedWorkers {
				g.Insert(v)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	if err := queue.Wait(); err != nil {
		return err
	}
	run.operations += size
	if err := run.checkGuarded(g, "concurrent inserts"); err != nil {
		return err
	}

	snapshot := g.Snapshot()
	slices.Sort(snapshot)
	if !slices.Equal(snapshot, ascending(0, size-1)) {
		return fmt.Errorf("guarded list holds %v, expected every value of %v", formatValues(snapshot), formatValues(ascending(0, size-1)))
	}

	for worker := 0; worker < guardedWorkers; worker++ {
		err := queue.Add(func() error {
			for v := worker; v < size; v += guardedWorkers {
				if !g.Remove(v) {
					return fmt.Errorf("remove %v reported not found", v)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	if err := queue.Wait(); err != nil {
		return err
	}
	run.operations += size
	if err := run.checkGuarded(g, "concurrent removes"); err != nil {
		return err
	}
	if !g.IsEmpty() {
		return fmt.Errorf("guarded list still holds %v values", g.Size())
	}
	return nil
}
