package harness

import (
	"fmt"
	"log"
	"os"
	"revlist/util"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"golang.org/x/net/html/charset"
)

type stepKind int

const (
	stepInsert stepKind = iota
	stepRemove
	stepReverse
	stepClear
	stepExpect
	stepSize
	stepPrint
)

type removeOutcome int

const (
	outcomeAny removeOutcome = iota
	outcomeFound
	outcomeMissing
)

type scriptStep struct {
	line    int
	kind    stepKind
	values  []int
	outcome removeOutcome
}

func scriptScenario(steps []scriptStep) Scenario {
	return Scenario{
		Name:        "script",
		Description: fmt.Sprintf("replay of %v scripted steps", len(steps)),
		run: func(run *scenarioRun) error {
			return replay(run, steps)
		},
	}
}

func loadScript(scriptPath string) ([]scriptStep, error) {
	var content []byte
	err := retry.Do(
		func() error {
			var readErr error
			content, readErr = os.ReadFile(scriptPath)
			return readErr
		},
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !os.IsNotExist(err) && !os.IsPermission(err)
		}),
	)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_SCRIPT_PATH,
			InternalError: fmt.Errorf("failed to read script '%v': %v", scriptPath, err),
		}
	}
	return parseScript(content)
}

// parseScript decodes content in whatever encoding it was saved with and parses one command per line.
func parseScript(content []byte) ([]scriptStep, error) {
	encoding, _, _ := charset.DetermineEncoding(content, "text/plain")
	decodedBytes, err := encoding.NewDecoder().Bytes(content)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_MALFORMED_SCRIPT,
			InternalError: fmt.Errorf("failed to decode script: %v", err),
		}
	}

	text := strings.TrimPrefix(string(decodedBytes), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	steps := make([]scriptStep, 0)
	for i, line := range strings.Split(text, "\n") {
		if comment := strings.Index(line, "#"); comment >= 0 {
			line = line[:comment]
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) == 0 {
			continue
		}
		step, err := parseStep(i+1, fields)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_MALFORMED_SCRIPT,
				InternalError: fmt.Errorf("line %v: %v", i+1, err),
			}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseStep(line int, fields []string) (scriptStep, error) {
	step := scriptStep{line: line}
	command, args := strings.ToLower(fields[0]), fields[1:]
	var err error

	switch command {
	case "insert":
		step.kind = stepInsert
		if len(args) == 0 {
			return step, fmt.Errorf("insert needs at least one value")
		}
		step.values, err = parseInts(args)
	case "remove":
		step.kind = stepRemove
		if len(args) < 1 || len(args) > 2 {
			return step, fmt.Errorf("remove needs a value and an optional found|missing")
		}
		step.values, err = parseInts(args[:1])
		if len(args) == 2 {
			switch strings.ToLower(args[1]) {
			case "found":
				step.outcome = outcomeFound
			case "missing":
				step.outcome = outcomeMissing
			default:
				return step, fmt.Errorf("unknown remove outcome '%v'", args[1])
			}
		}
	case "reverse", "clear", "print":
		if len(args) > 0 {
			return step, fmt.Errorf("%v takes no arguments", command)
		}
		step.kind = map[string]stepKind{"reverse": stepReverse, "clear": stepClear, "print": stepPrint}[command]
	case "expect":
		step.kind = stepExpect
		if len(args) == 1 && strings.ToLower(args[0]) == "empty" {
			step.values = []int{}
			break
		}
		if len(args) == 0 {
			return step, fmt.Errorf("expect needs values or 'empty'")
		}
		step.values, err = parseInts(args)
	case "size":
		step.kind = stepSize
		if len(args) != 1 {
			return step, fmt.Errorf("size needs exactly one value")
		}
		step.values, err = parseInts(args)
		if err == nil && step.values[0] < 0 {
			err = fmt.Errorf("size cannot be negative")
		}
	default:
		return step, fmt.Errorf("unknown command '%v'", fields[0])
	}
	return step, err
}

func parseInts(fields []string) ([]int, error) {
	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("'%v' is not an integer", field)
		}
		values[i] = v
	}
	return values, nil
}

func replay(run *scenarioRun, steps []scriptStep) error {
	l := run.newList()
	for _, step := range steps {
		var err error
		switch step.kind {
		case stepInsert:
			err = run.insert(l, step.values...)
		case stepRemove:
			switch step.outcome {
			case outcomeFound:
				err = run.expectRemove(l, step.values[0], true)
			case outcomeMissing:
				err = run.expectRemove(l, step.values[0], false)
			default:
				_, err = run.remove(l, step.values[0])
			}
		case stepReverse:
			err = run.reverse(l)
		case stepClear:
			err = run.clear(l)
		case stepExpect:
			err = run.expectValues(l, step.values)
		case stepSize:
			err = run.expectSize(l, step.values[0])
		case stepPrint:
			log.Printf("%v line %v:%v", run.name, step.line, dumpList(l))
		}
		if err != nil {
			return fmt.Errorf("line %v: %w", step.line, err)
		}
	}
	return nil
}
