package main

import (
	"log"
	"os"

	"github.com/Pacchu9832/Edutrack-admin/apps/web/echo"
	"github.com/Pacchu9832/Edutrack-admin/core"
	"github.com/Pacchu9832/Edutrack-admin/core/session"
	logsvc "github.com/Pacchu9832/Edutrack-admin/services/logger"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, conf.AppName+" ", log.LstdFlags|log.Lshortfile)
	var logger core.Logger
	if conf.Debug || conf.RollbarToken == "" {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	app := echoweb.NewServer(
		&echoweb.Options{
			Addr:     conf.Server.Addr,
			Conf:     conf,
			Logger:   logger,
			Sessions: session.NewCookieStore(conf.SecretKey, conf.Env == "PROD"),
		},
	)
	app.Start()
}
