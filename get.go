package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/schattian/schlemiel/internal/schlemiel"
	"go.etcd.io/bbolt"
)

type getCmd struct{}

func prepareGet() (cli.Command, error) {
	return &getCmd{}, nil
}

func (cmd *getCmd) Run(args []string) int {
	db, err := initDB()
	if err != nil {
		fmt.Printf("err initDB: %v", err)
		return 1
	}
	defer db.Close()
	switch len(args) {
	case 0:
		err = errors.Wrap(cmd.printListReports(db), "printListReports")
	case 1:
		err = errors.Wrap(cmd.printReportDetail(db, args[0]), "printReportDetail")
	default:
		return cli.RunResultHelp
	}
	if err != nil {
		fmt.Printf("err %v", err)
		return 1
	}
	return 0
}

func (cmd *getCmd) printReportDetail(db *bbolt.DB, name string) error {
	r, err := schlemiel.LoadReport(db, name)
	if err != nil {
		return errors.Wrap(err, "LoadReport")
	}
	if r == nil {
		fmt.Printf("report %s not found\n", name)
		return nil
	}
	detail := fmt.Sprintf("name: %s\ncreated: %s", r.Name, r.CreatedAt.Format("2006-01-02 15:04:05"))
	if r.CPUModel != "" {
		detail = fmt.Sprintf("%s\ncpu: %s (%d logical cores)", detail, r.CPUModel, r.Cores)
	}
	for i, trial := range r.Trials {
		detail = fmt.Sprintf("%s\ntrial %d:\n\tinefficient: %s\n\tefficient: %s", detail, i+1, trial.Inefficient, trial.Efficient)
	}
	fmt.Println(detail)
	return nil
}

func (cmd *getCmd) printListReports(db *bbolt.DB) error {
	reports, err := schlemiel.ListReports(db)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 3, 3, 3, ' ', 0)
	fmt.Fprintln(w, "name\ttrials\tcpu\tcreated\t")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t\n", r.Name, len(r.Trials), r.CPUModel, r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
	return nil
}

func (cmd *getCmd) Synopsis() string {
	return `get report detail or print the reports list`
}

func (cmd *getCmd) Help() string {
	return `Usage: schlemiel get [name]

Print details for the given report. In case no name is given, list all reports`
}
