package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/pkg/namesgenerator"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/schattian/schlemiel/internal/schlemiel"
)

type runCmd struct{}

func prepareRun() (cli.Command, error) {
	return &runCmd{}, nil
}

func (cmd *runCmd) Run(args []string) int {
	args, name := popNameFlag(args)
	if name == "" {
		name = namesgenerator.GetRandomName(0)
		fmt.Printf("run name not given, using `%s`. To give a run name use the `-name` flag\n", name)
	}

	args, rawTrials := popTrialsFlag(args)
	trials := 1
	if rawTrials != "" {
		var err error
		trials, err = strconv.Atoi(rawTrials)
		if err != nil || trials < 1 {
			fmt.Printf("invalid -trials value `%s`, want an integer >= 1\n", rawTrials)
			return cli.RunResultHelp
		}
	}
	if len(args) != 0 {
		return cli.RunResultHelp
	}

	report := &schlemiel.Report{Name: name, CreatedAt: time.Now()}
	report.DescribeCPU()

	var buf schlemiel.Buffer
	for i := 0; i < trials; i++ {
		trial := schlemiel.Trial{
			Inefficient: schlemiel.TimeVariant(schlemiel.Inefficient, &buf, schlemiel.OuterIters),
		}
		fmt.Println(trial.Inefficient)
		trial.Efficient = schlemiel.TimeVariant(schlemiel.Efficient, &buf, schlemiel.OuterIters)
		fmt.Println(trial.Efficient)
		report.Trials = append(report.Trials, trial)
	}

	db, err := initDB()
	if err != nil {
		fmt.Printf("err initDB: %v", err)
		return 1
	}
	defer db.Close()
	err = errors.Wrap(report.Save(db), "save")
	if err != nil {
		fmt.Printf("err %v", err)
		return 1
	}
	return 0
}

func popFlagWithVal(args []string, flagName string) ([]string, string) {
	pivot := -2
	singleFlagName := fmt.Sprintf("-%s", flagName)
	doubleFlagName := fmt.Sprintf("-%s", singleFlagName)
	for i, arg := range args {
		if arg == singleFlagName || arg == doubleFlagName {
			pivot = i
		}
		if i == pivot+1 {
			return append(args[:i-1], args[i+1:]...), arg
		}
		if strings.HasPrefix(arg, fmt.Sprintf("%s=", doubleFlagName)) {
			val := arg[len(flagName)+3:] // --=
			if len(args) <= i+1 {
				return args[:i], val
			}
			return append(args[:i], args[i+1:]...), val
		}
		if strings.HasPrefix(arg, fmt.Sprintf("%s=", singleFlagName)) {
			val := arg[len(flagName)+2:] // -=
			if len(args) <= i+1 {
				return args[:i], val
			}
			return append(args[:i], args[i+1:]...), val
		}
	}

	return args, ""
}

func popNameFlag(args []string) ([]string, string) {
	return popFlagWithVal(args, "name")
}

func popTrialsFlag(args []string) ([]string, string) {
	return popFlagWithVal(args, "trials")
}

func (cmd *runCmd) Synopsis() string {
	return `run both concat variants and record the timings`
}

func (cmd *runCmd) Help() string {
	return `Usage: schlemiel run [-name <name>] [-trials <n>]

Rebuild a 1024-byte string 10000 times per variant: once appending with
strncat-style rescans (quadratic) and once with offset-tracked writes
(linear). Prints one "<s>s <ms>ms <ns>ns" line per variant per trial,
inefficient first, and records the run under <name>.
`
}
