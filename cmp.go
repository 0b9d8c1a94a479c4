package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/schattian/schlemiel/internal/schlemiel"
	"go.etcd.io/bbolt"
	"golang.org/x/perf/benchstat"
)

type cmpCmd struct{}

func prepareCmp() (cli.Command, error) {
	return &cmpCmd{}, nil
}

func (cmd *cmpCmd) Run(args []string) int {
	if len(args) < 2 {
		return cli.RunResultHelp
	}
	db, err := initDB()
	if err != nil {
		fmt.Printf("err initDB: %v", err)
		return 1
	}
	defer db.Close()
	err = cmd.cmp(db, args...)
	if err != nil {
		log.Fatal(err)
	}
	return 0
}

func getReports(db *bbolt.DB, names ...string) (reports []*schlemiel.Report, err error) {
	for _, name := range names {
		r, err := schlemiel.LoadReport(db, name)
		if err != nil {
			return nil, err
		}
		if r == nil {
			fmt.Printf("report %s not found, skipping\n", name)
			continue
		}
		reports = append(reports, r)
	}
	return
}

func (cmd *cmpCmd) cmp(db *bbolt.DB, names ...string) error {
	reports, err := getReports(db, names...)
	if err != nil {
		return errors.Wrap(err, "getReports")
	}
	c := &benchstat.Collection{}
	for _, r := range reports {
		err := c.AddFile(r.Name, bytes.NewBufferString(r.BenchFormat()))
		if err != nil {
			return errors.Wrap(err, "benchstat.Collection.AddFile")
		}
	}
	var buf bytes.Buffer
	benchstat.FormatText(&buf, c.Tables())
	_, err = os.Stdout.Write(buf.Bytes())
	return errors.Wrap(err, "os.Stdout.Write")
}

func (cmd *cmpCmd) Synopsis() string {
	return `compare two or more reports`
}

func (cmd *cmpCmd) Help() string {
	return `Usage: schlemiel cmp <report1> <report2> [report3] [...]

Compare two or more recorded runs with benchstat`
}
