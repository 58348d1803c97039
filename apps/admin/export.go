package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/report"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

type exportOptions struct {
	kind    string
	class   string
	subject string
	exam    string
	start   string
	end     string
	format  string
	out     string
}

// export builds the requested report from backend data and writes it to a
// CSV or JSON file.
func (cli *commandLine) export(opts exportOptions) error {
	if !cli.store.Restore().Valid() {
		return errors.New("not logged in; run the login command first")
	}

	rep, err := cli.buildReport(opts)
	if err != nil {
		return err
	}

	format := opts.format
	if format != "json" {
		format = "csv"
	}
	out := opts.out
	if out == "" {
		out = rep.Filename(format)
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer f.Close()

	if format == "json" {
		err = rep.WriteJSON(f)
	} else {
		err = rep.WriteCSV(f)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d rows)\n", out, len(rep.Rows))
	return nil
}

func (cli *commandLine) buildReport(opts exportOptions) (report.Report, error) {
	ctx := context.Background()
	now := time.Now()
	scope := report.Scope{
		Class:     opts.class,
		Subject:   opts.subject,
		Exam:      opts.exam,
		StartDate: opts.start,
		EndDate:   opts.end,
	}

	switch report.Kind(opts.kind) {
	case report.KindMarks:
		if scope.Class == "" || scope.Subject == "" || scope.Exam == "" {
			return report.Report{}, errors.New("marks reports need -class, -subject and -exam")
		}
		marks, err := cli.api.Marks(ctx, edusvc.MarkScope{Class: scope.Class, Subject: scope.Subject, Exam: scope.Exam})
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching marks")
		}
		return report.Marks(scope, now, marks), nil

	case report.KindAttendance:
		if scope.Class == "" || scope.StartDate == "" {
			return report.Report{}, errors.New("attendance reports need -class and -start")
		}
		students, err := cli.api.StudentsByClass(ctx, scope.Class)
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching class roster")
		}
		days, err := cli.attendanceRange(ctx, scope)
		if err != nil {
			return report.Report{}, err
		}
		return report.Attendance(scope, now, students, days), nil

	case report.KindStudents:
		var students []school.Student
		var err error
		if scope.Class != "" {
			students, err = cli.api.StudentsFiltered(ctx, scope.Class)
		} else {
			students, err = cli.api.AllStudents(ctx)
		}
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching students")
		}
		return report.Students(scope, now, students), nil

	case report.KindLeaves:
		leaves, err := cli.api.LeaveRequestsFiltered(ctx, scope.Class, scope.StartDate, scope.EndDate)
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching leave requests")
		}
		return report.Leaves(scope, now, leaves), nil

	case report.KindNotices:
		notices, err := cli.api.Notices(ctx)
		if err != nil {
			return report.Report{}, errors.Wrap(err, "fetching notices")
		}
		return report.Notices(scope, now, notices), nil
	}
	return report.Report{}, errors.Errorf("unknown report type %q", opts.kind)
}

func (cli *commandLine) attendanceRange(ctx context.Context, scope report.Scope) ([]report.Day, error) {
	start, err := time.Parse("2006-01-02", scope.StartDate)
	if err != nil {
		return nil, errors.New("-start must be YYYY-MM-DD")
	}
	end := start
	if scope.EndDate != "" {
		if end, err = time.Parse("2006-01-02", scope.EndDate); err != nil {
			return nil, errors.New("-end must be YYYY-MM-DD")
		}
	}
	if end.Before(start) {
		return nil, errors.New("-end precedes -start")
	}
	if end.Sub(start) > 62*24*time.Hour {
		return nil, errors.New("date range is limited to two months")
	}

	var days []report.Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		records, err := cli.api.Attendance(ctx, edusvc.AttendanceScope{
			Class:    scope.Class,
			Subject:  scope.Subject,
			PeriodNo: 1,
			Date:     date,
		})
		if err != nil {
			continue // unmarked day
		}
		days = append(days, report.Day{Date: date, Records: records})
	}
	return days, nil
}
