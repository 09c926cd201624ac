package harness

import (
	"fmt"
	"log"
	"revlist/list"
	"slices"
	"strconv"
	"strings"
)

// maxShownValues bounds how many values an error message quotes.
const maxShownValues = 20

type scenarioRun struct {
	name       string
	runner     *scenarioRunner
	operations int
	tracked    bool
	baseline   int64
	lists      []*list.List
	guarded    []*list.Guarded
}

func liveNodes() int64 {
	constructed, destroyed, _ := lifecycleCounts()
	return constructed - destroyed
}

func (run *scenarioRun) newList() *list.List {
	l := list.New()
	run.lists = append(run.lists, l)
	return l
}

func (run *scenarioRun) newGuarded() *list.Guarded {
	g := list.NewGuarded()
	run.guarded = append(run.guarded, g)
	return g
}

// release tears down every list the scenario created and checks nothing it built outlived it.
func (run *scenarioRun) release() (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic while releasing lists: %v", recovered)
		}
	}()
	for _, l := range run.lists {
		l.Clear()
	}
	for _, g := range run.guarded {
		g.Clear()
	}
	if run.tracked {
		if live := liveNodes(); live != run.baseline {
			return fmt.Errorf("%v nodes still live after releasing every list", live-run.baseline)
		}
	}
	return nil
}

func (run *scenarioRun) insert(l *list.List, values ...int) error {
	for _, v := range values {
		l.Insert(v)
		run.operations++
		if err := run.check(l, fmt.Sprintf("insert %v", v)); err != nil {
			return err
		}
	}
	return nil
}

func (run *scenarioRun) remove(l *list.List, v int) (bool, error) {
	before := l.Size()
	found := l.Remove(v)
	run.operations++
	step := fmt.Sprintf("remove %v", v)
	if found && l.Size() != before-1 {
		return found, fmt.Errorf("after %v: size went from %v to %v", step, before, l.Size())
	}
	if !found && l.Size() != before {
		return found, fmt.Errorf("after %v: value was not found but size went from %v to %v", step, before, l.Size())
	}
	return found, run.check(l, step)
}

func (run *scenarioRun) expectRemove(l *list.List, v int, wantFound bool) error {
	found, err := run.remove(l, v)
	if err != nil {
		return err
	}
	if found != wantFound {
		return fmt.Errorf("remove %v reported found=%v, expected %v", v, found, wantFound)
	}
	return nil
}

func (run *scenarioRun) reverse(l *list.List) error {
	l.Reverse()
	run.operations++
	return run.check(l, "reverse")
}

func (run *scenarioRun) clear(l *list.List) error {
	l.Clear()
	run.operations++
	return run.check(l, "clear")
}

func (run *scenarioRun) expectValues(l *list.List, want []int) error {
	got := slices.Collect(l.Values())
	if !slices.Equal(got, want) {
		return fmt.Errorf("list reads %v, expected %v", formatValues(got), formatValues(want))
	}
	return nil
}

func (run *scenarioRun) expectSize(l *list.List, want int) error {
	if l.Size() != want {
		return fmt.Errorf("size is %v, expected %v", l.Size(), want)
	}
	if l.IsEmpty() != (want == 0) {
		return fmt.Errorf("isEmpty is %v with size %v", l.IsEmpty(), want)
	}
	return nil
}

// check walks the chain and compares it with the tracked size and, when available, the live node count.
func (run *scenarioRun) check(l *list.List, step string) error {
	if run.runner.opts.PrintLists {
		log.Printf("%v after %v:%v", run.name, step, dumpList(l))
	}

	size := l.Size()
	reachable := 0
	for node := l.Front(); node != nil; node = node.Next() {
		reachable++
		if reachable > size {
			return fmt.Errorf("after %v: chain is longer than size %v, it may contain a cycle", step, size)
		}
	}
	if reachable != size {
		return fmt.Errorf("after %v: %v nodes reachable but size is %v", step, reachable, size)
	}
	if l.IsEmpty() != (size == 0) {
		return fmt.Errorf("after %v: isEmpty is %v with size %v", step, l.IsEmpty(), size)
	}

	if run.tracked {
		if live := liveNodes() - run.baseline; live != int64(size) {
			return fmt.Errorf("after %v: %v nodes live but %v reachable", step, live, size)
		}
	}
	return nil
}

func (run *scenarioRun) checkGuarded(g *list.Guarded, step string) error {
	return g.Inspect(func(l *list.List) error {
		return run.check(l, step)
	})
}

// dumpList renders the list head to tail for the log.
func dumpList(l *list.List) string {
	var builder strings.Builder
	builder.WriteString("\nPrinting the list...")
	if l.IsEmpty() {
		builder.WriteString("\nList is empty. Nothing to print.")
		return builder.String()
	}
	builder.WriteString("\nList size = ")
	builder.WriteString(strconv.Itoa(l.Size()))
	builder.WriteString("\n########## START OF LIST ##########")
	builder.WriteString("\nhead -> ")
	first := true
	for v := range l.Values() {
		if !first {
			builder.WriteString("->")
		}
		builder.WriteString(strconv.Itoa(v))
		first = false
	}
	builder.WriteString("\n########## END OF LIST ##########")
	return builder.String()
}

func formatValues(values []int) string {
	if len(values) == 0 {
		return "[]"
	}
	shown := values
	if len(shown) > maxShownValues {
		shown = shown[:maxShownValues]
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = strconv.Itoa(v)
	}
	suffix := ""
	if len(values) > maxShownValues {
		suffix = fmt.Sprintf(" ... (%v values)", len(values))
	}
	return "[" + strings.Join(parts, " ") + suffix + "]"
}

func ascending(from int, to int) []int {
	values := make([]int, 0, max(to-from+1, 0))
	for v := from; v <= to; v++ {
		values = append(values, v)
	}
	return values
}

func descending(from int, to int) []int {
	values := make([]int, 0, max(from-to+1, 0))
	for v := from; v >= to; v-- {
		values = append(values, v)
	}
	return values
}
