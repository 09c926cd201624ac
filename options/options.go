package options

import (
	"fmt"
	"os"
	"path/filepath"
	"revlist/util"
	"strings"

	"github.com/urfave/cli/v2"
)

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:     "include",
		Aliases:  []string{"i"},
		Value:    "",
		Usage:    "patterns of scenario names to run, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "exclude",
		Aliases:  []string{"e"},
		Value:    "",
		Usage:    "patterns of scenario names to skip, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "size",
		Aliases:  []string{"n"},
		Value:    1000,
		Usage:    "number of elements used by the reverse round trip scenario",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "parallel",
		Aliases:  []string{"p"},
		Value:    1,
		Usage:    "number of scenarios to run at once, live node checks only run when this is 1",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "script",
		Aliases:  []string{"s"},
		Value:    "",
		Usage:    "path to an operation script to replay as the 'script' scenario",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "report",
		Aliases:  []string{"o"},
		Value:    "",
		Usage:    "path of a JSON report file. its directory will be created if does not exist",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "print",
		Value:    false,
		Usage:    "print the list after every step",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
}

type Options struct {
	IncludePatterns []string
	ExcludePatterns []string
	Size            int
	Parallel        int
	ScriptPath      string
	ReportPath      string
	PrintLists      bool
	VerboseLogging  bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	patterns := strings.Split(flag, ",")
	for i, pattern := range patterns {
		patterns[i] = strings.TrimSpace(pattern)
	}
	return patterns
}

func validateFile(filePath string) error {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist at %v", filePath)
	}
	if err != nil {
		return fmt.Errorf("file error at %v: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("file is actually a directory at %v", filePath)
	}
	if util.BinaryExt(filepath.Ext(filePath)) {
		return fmt.Errorf("file at %v does not look like a text file", filePath)
	}
	return nil
}

func validateDirectory(dirPath string, createIfNotExist bool) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		if !createIfNotExist {
			return fmt.Errorf("directory does not exist at %v", dirPath)
		}
		err = os.MkdirAll(dirPath, 0777)
		if err != nil {
			return fmt.Errorf("failed to create directory at %v: %w", dirPath, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("directory error at %v: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory is actually a file at %v", dirPath)
	}
	return nil
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		IncludePatterns: splitListFlag(c.String("include")),
		ExcludePatterns: splitListFlag(c.String("exclude")),
		Size:            c.Int("size"),
		Parallel:        c.Int("parallel"),
		ScriptPath:      c.String("script"),
		ReportPath:      c.String("report"),
		PrintLists:      c.Bool("print"),
		VerboseLogging:  c.Bool("verbose"),
	}
	err := opts.Validate()
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks option values and prepares the report directory.
func (opts *Options) Validate() error {
	if opts.Size < 1 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_ARGUMENT,
			InternalError: fmt.Errorf("size must be positive, got %v", opts.Size),
		}
	}
	if opts.Parallel < 1 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_ARGUMENT,
			InternalError: fmt.Errorf("parallel must be positive, got %v", opts.Parallel),
		}
	}

	if len(opts.ScriptPath) > 0 {
		err := validateFile(opts.ScriptPath)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_SCRIPT_PATH,
				InternalError: fmt.Errorf("script at '%v' is missing or invalid: %v", opts.ScriptPath, err),
			}
		}
	}

	if len(opts.ReportPath) > 0 {
		info, err := os.Stat(opts.ReportPath)
		if err == nil && info.IsDir() {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_REPORT_PATH,
				InternalError: fmt.Errorf("report path '%v' is a directory", opts.ReportPath),
			}
		}
		err = validateDirectory(filepath.Dir(opts.ReportPath), true)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_REPORT_PATH,
				InternalError: err,
			}
		}
	}

	return nil
}
