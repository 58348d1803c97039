package main

import (
	"log"
	"os"

	"github.com/Pacchu9832/Edutrack-admin/core"
	"github.com/Pacchu9832/Edutrack-admin/core/session"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	store := session.NewFileStore(conf.SessionFile)

	api := edusvc.NewClient(
		conf.API.BaseURL,
		edusvc.WithTimeout(conf.API.Timeout),
		edusvc.WithTokenSource(func() string { return store.Restore().Token }),
		edusvc.WithOnUnauthorized(func() { _ = store.Clear() }),
	)

	cli := commandLine{
		conf:  conf,
		api:   api,
		store: store,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
