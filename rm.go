package main

import (
	"fmt"

	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/schattian/schlemiel/internal/schlemiel"
	"go.etcd.io/bbolt"
)

type rmCmd struct{}

func prepareRm() (cli.Command, error) {
	return &rmCmd{}, nil
}

func (cmd *rmCmd) Run(args []string) int {
	if len(args) < 1 {
		return cli.RunResultHelp
	}
	if args[0] == "--all" || args[0] == "-all" {
		err := cmd.rmAllReports()
		if err != nil {
			fmt.Printf("err rmAllReports: %v", err)
			return 1
		}
		return 0
	}
	err := cmd.rmReports(args...)
	if err != nil {
		fmt.Printf("err during rmReports: %v", err)
		return 1
	}
	return 0
}

func (cmd *rmCmd) rmAllReports() error {
	db, err := initDB()
	if err != nil {
		return errors.Wrap(err, "initDB")
	}
	defer db.Close()
	err = rmAllFromDB(db)
	if errors.Is(err, bbolt.ErrBucketNotFound) {
		err = nil
	}
	return errors.Wrap(err, "rmAllFromDB")
}

func (cmd *rmCmd) rmReports(names ...string) error {
	db, err := initDB()
	if err != nil {
		return errors.Wrap(err, "initDB")
	}
	defer db.Close()
	rest, err := rmFromDB(db, names...)
	if err != nil {
		return errors.Wrap(err, "rmFromDB")
	}
	for _, name := range rest {
		fmt.Printf("report %s not found\n", name)
	}
	return nil
}

func rmFromDB(db *bbolt.DB, names ...string) (rest []string, err error) {
	var delReports []string
	err = db.Update(func(tx *bbolt.Tx) error {
		bReports := tx.Bucket(schlemiel.KeyReport)
		if bReports == nil {
			return nil
		}
		return bReports.ForEach(func(name, reportBytes []byte) error {
			if strName := string(name); isInStrSl(strName, names) {
				delReports = append(delReports, strName)
				return bReports.Delete(name)
			}
			return nil
		})
	})
	if err != nil {
		return
	}
	rest = diffStrSl(names, delReports)
	return
}

func rmAllFromDB(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(schlemiel.KeyReport)
	})
}

func diffStrSl(a, b []string) []string {
	mb := make(map[string]struct{}, len(b))
	for _, x := range b {
		mb[x] = struct{}{}
	}
	var diff []string
	for _, x := range a {
		if _, found := mb[x]; !found {
			diff = append(diff, x)
		}
	}
	return diff
}

func isInStrSl(s string, sl []string) bool {
	for _, ss := range sl {
		if s == ss {
			return true
		}
	}
	return false
}

func (cmd *rmCmd) Synopsis() string {
	return `remove report(s)`
}

func (cmd *rmCmd) Help() string {
	return `Usage: schlemiel rm [--all] <report1> [report2] [...]

Remove the specified report(s). If [--all] is given, delete all the reports
`
}
