package harness

import (
	"fmt"
	"log"
	"revlist/options"
	"revlist/parallel"
	"revlist/report"
	"revlist/util"
	"slices"
	"strings"
	"time"

	"github.com/gobwas/glob"
)

type scenarioRunner struct {
	opts            *options.Options
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
	report          *report.Report
	tracked         bool
}

// Run executes every selected scenario and fails when one of them fails or when
// any node outlived the run.
func Run(opts *options.Options) (err error) {
	runner := &scenarioRunner{
		opts:   opts,
		report: report.NewReport(),
	}

	runner.includePatterns, err = runner.compileGlobs(opts.IncludePatterns, "include")
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile include patterns '%v': %v", opts.IncludePatterns, err),
		}
	}
	runner.excludePatterns, err = runner.compileGlobs(opts.ExcludePatterns, "exclude")
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile exclude patterns '%v': %v", opts.ExcludePatterns, err),
		}
	}

	available := builtinScenarios
	if len(opts.ScriptPath) > 0 {
		steps, err := loadScript(opts.ScriptPath)
		if err != nil {
			return err
		}
		runner.verboseLog("loaded %v steps from '%v'", len(steps), opts.ScriptPath)
		available = append(slices.Clone(builtinScenarios), scriptScenario(steps))
	}

	selected := runner.selectScenarios(available)
	if len(selected) == 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_SCENARIO_FOUND,
			InternalError: fmt.Errorf("no scenario matches include '%v' and exclude '%v'", opts.IncludePatterns, opts.ExcludePatterns),
		}
	}

	// nodes already owned by lists outside this run are not ours to account for
	var preexisting int64
	if lifecycleAvailable() {
		if !resetLifecycle() {
			preexisting = liveNodes()
			log.Printf("%v nodes are still live before the run, counters were not reset", preexisting)
		}
		runner.tracked = opts.Parallel == 1
		if !runner.tracked {
			runner.verboseLog("running with %v workers, live node checks are limited to the end of the run", opts.Parallel)
		}
	} else {
		runner.verboseLog("node lifetime counters are not compiled in, build with -tags nodetrack to check them")
	}

	log.Printf("running %v scenarios with %v workers", len(selected), opts.Parallel)

	queue := parallel.CreateJobQueue(len(selected), opts.Parallel)
	for _, scenario := range selected {
		err = queue.Add(func() error {
			return runner.runScenario(scenario)
		})
		if err != nil {
			queue.Close()
			return err
		}
	}
	scenariosErr := queue.Wait()
	queue.Close()

	constructed, destroyed, tracked := lifecycleCounts()
	runner.report.Finalize(tracked, constructed, destroyed)

	if len(opts.ReportPath) > 0 {
		err = runner.report.Write(opts.ReportPath)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_REPORT_PATH,
				InternalError: err,
			}
		}
		log.Printf("report written to '%v'", opts.ReportPath)
	}

	if leaked := runner.report.Leaked() - preexisting; leaked != 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_LEAK_DETECTED,
			InternalError: fmt.Errorf("%v nodes were never released (constructed %v, destroyed %v)", leaked, constructed, destroyed),
		}
	}

	if scenariosErr != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_SCENARIO_FAILED,
			InternalError: fmt.Errorf("%v of %v scenarios failed: %w", runner.report.FailedCount, len(selected), scenariosErr),
		}
	}

	log.Printf("%v scenarios passed with %v operations", runner.report.PassedCount, runner.report.TotalOperations)
	return nil
}

func (runner *scenarioRunner) runScenario(scenario Scenario) (err error) {
	run := &scenarioRun{
		name:    scenario.Name,
		runner:  runner,
		tracked: runner.tracked,
	}
	if run.tracked {
		run.baseline = liveNodes()
	}
	start := time.Now()
	runner.verboseLog("starting scenario '%v': %v", scenario.Name, scenario.Description)

	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
		if releaseErr := run.release(); err == nil {
			err = releaseErr
		}
		if err != nil {
			err = fmt.Errorf("scenario '%v': %w", scenario.Name, err)
			log.Printf("--- %v", err)
		} else {
			log.Printf("+++ scenario '%v' passed after %v operations", scenario.Name, run.operations)
		}
		runner.report.AddResult(scenario.Name, run.operations, time.Since(start), err)
	}()

	return scenario.run(run)
}

func (runner *scenarioRunner) selectScenarios(available []Scenario) []Scenario {
	selected := make([]Scenario, 0, len(available))
	for _, scenario := range available {
		if len(runner.includePatterns) > 0 && !matches(scenario.Name, runner.includePatterns) {
			runner.verboseLog("--- skipping '%v' - not matching include patterns", scenario.Name)
			continue
		}
		if len(runner.excludePatterns) > 0 && matches(scenario.Name, runner.excludePatterns) {
			runner.verboseLog("--- skipping '%v' - matching exclude patterns", scenario.Name)
			continue
		}
		selected = append(selected, scenario)
	}
	return selected
}

func (runner *scenarioRunner) compileGlobs(patterns []string, title string) ([]glob.Glob, error) {
	runner.verboseLog("%v %v patterns: %v", len(patterns), title, strings.Join(patterns, ", "))
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		globs[i] = compiled
	}
	return globs, nil
}

func matches(name string, patterns []glob.Glob) bool {
	for _, pattern := range patterns {
		if pattern.Match(name) {
			return true
		}
	}
	return false
}

func (runner *scenarioRunner) verboseLog(format string, v ...interface{}) {
	if runner.opts.VerboseLogging {
		log.Printf(format, v...)
	}
}
