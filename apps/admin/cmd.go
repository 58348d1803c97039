package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/Pacchu9832/Edutrack-admin/core"
	"github.com/Pacchu9832/Edutrack-admin/core/session"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf  *core.Config
	api   *edusvc.Client
	store *session.FileStore
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -username USERNAME|EMAIL              - log in; the password is prompted next")
	fmt.Println("  logout                                      - forget the stored session")
	fmt.Println("  whoami                                      - show the logged in user")
	fmt.Println("  export -type TYPE [-class CLASS] [options]  - write a report to a file")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginUname := loginCmd.String("username", "", "The admin's username or email. The password will be prompted next.")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportType := exportCmd.String("type", "", "Report type: marks|attendance|students|leave-requests|notices.")
	exportClass := exportCmd.String("class", "", "Class to scope the report to.")
	exportSubject := exportCmd.String("subject", "", "Subject (marks/attendance reports).")
	exportExam := exportCmd.String("exam", "", "Exam (marks reports).")
	exportStart := exportCmd.String("start", "", "Start date, YYYY-MM-DD (attendance/leave reports).")
	exportEnd := exportCmd.String("end", "", "End date, YYYY-MM-DD (attendance/leave reports).")
	exportFormat := exportCmd.String("format", "csv", "Output format: csv|json.")
	exportOut := exportCmd.String("out", "", "Output file; defaults to the report's own name in the working dir.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginUname, string(pwd))
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportType == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(exportOptions{
			kind:    *exportType,
			class:   *exportClass,
			subject: *exportSubject,
			exam:    *exportExam,
			start:   *exportStart,
			end:     *exportEnd,
			format:  *exportFormat,
			out:     *exportOut,
		})
	default:
		cli.printUsage()
		return errHelp
	}
}
