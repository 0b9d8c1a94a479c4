package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/mitchellh/cli"
	"github.com/schattian/schlemiel/internal/schlemiel"
	"go.etcd.io/bbolt"
)

func main() {
	c := cli.NewCLI("schlemiel", "1.0.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"run": prepareRun,
		"get": prepareGet,
		"cmp": prepareCmp,
		"rm":  prepareRm,
	}
	rand.Seed(time.Now().Unix())

	exitStatus, err := c.Run()
	if err != nil {
		log.Println(err)
	}

	os.Exit(exitStatus)
}

func initDB() (*bbolt.DB, error) {
	err := os.MkdirAll(schlemiel.HostRootPath, os.ModePerm)
	if err != nil {
		return nil, err
	}
	return bbolt.Open(schlemiel.DBFilename(), 0600, bbolt.DefaultOptions)
}
