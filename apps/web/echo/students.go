package echoweb

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/listview"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// classSelectPage lists the classes with their roster sizes; the counts are
// fetched in parallel, one call per class.
func (app *webApp) classSelectPage(ctx echo.Context) error {
	api := app.api(currentSession(ctx))
	reqCtx := ctx.Request().Context()

	classes, err := api.Classes(reqCtx)
	if err != nil {
		return errors.Wrap(err, "fetching classes")
	}
	sort.Slice(classes, func(i, j int) bool {
		return listview.LeadingInt(classes[i]) < listview.LeadingInt(classes[j])
	})

	counts := api.ClassCounts(reqCtx, classes)

	type classCard struct {
		ID    string
		Count int
	}
	cards := make([]classCard, 0, len(classes))
	for _, id := range classes {
		cards = append(cards, classCard{ID: id, Count: counts[id]})
	}
	return ctx.Render(http.StatusOK, "students_classes.html", echo.Map{
		"Classes": cards,
	})
}

func (app *webApp) studentList(pageSize int) *listview.Manager[school.Student] {
	return listview.NewManager(listview.Config[school.Student]{
		PageSize: pageSize,
		ID:       func(s school.Student) int { return s.ID },
		SearchFields: []func(school.Student) string{
			func(s school.Student) string { return s.Name },
			func(s school.Student) string { return s.RollNumber },
			func(s school.Student) string { return s.Username },
		},
		Columns: map[string]listview.Column[school.Student]{
			"roll": {Kind: listview.Numeric, Value: func(s school.Student) string { return s.RollNumber }},
			"name": {Value: func(s school.Student) string { return s.Name }},
		},
		Filters: map[string]listview.Predicate[school.Student]{
			"gender": listview.Equals(func(s school.Student) string { return s.Gender }),
		},
		DefaultSort: "roll",
	})
}

func (app *webApp) studentsPage(ctx echo.Context) error {
	classID := ctx.Param("classId")
	api := app.api(currentSession(ctx))

	students, err := api.StudentsByClass(ctx.Request().Context(), classID)
	if err != nil {
		return errors.Wrap(err, "fetching class roster")
	}

	m := app.studentList(app.conf.PageSize)
	m.SetCollection(students)
	view := bindList(ctx, m, "gender")

	return ctx.Render(http.StatusOK, "students.html", echo.Map{
		"Class": classID,
		"View":  view,
		"Query": ctx.QueryParams(),
		"Sort":  m.SortKey(),
		"Order": m.SortOrder(),
	})
}

func (app *webApp) studentDetailsPage(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	student, err := app.api(currentSession(ctx)).Student(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching student")
	}
	return ctx.Render(http.StatusOK, "student_detail.html", echo.Map{
		"Student": student,
	})
}

func bindStudentForm(ctx echo.Context) school.StudentForm {
	return school.StudentForm{
		Name:            ctx.FormValue("name"),
		Username:        ctx.FormValue("username"),
		RollNumber:      ctx.FormValue("roll_number"),
		Email:           ctx.FormValue("email"),
		Phone:           ctx.FormValue("phone"),
		Password:        ctx.FormValue("password"),
		Gender:          ctx.FormValue("gender"),
		DOB:             ctx.FormValue("dob"),
		Address:         ctx.FormValue("address"),
		BloodGroup:      ctx.FormValue("blood_group"),
		ParentName:      ctx.FormValue("parent_name"),
		ParentContactNo: ctx.FormValue("parent_contact_no"),
		ParentAddress:   ctx.FormValue("parent_address"),
		Class:           ctx.FormValue("class"),
	}
}

func (app *webApp) createStudent(ctx echo.Context) error {
	form := bindStudentForm(ctx)
	if err := form.Validate(true /* creating */); err != nil {
		return err
	}
	avatar, err := formUpload(ctx, "profile_image")
	if err != nil {
		return err
	}

	if err := app.api(currentSession(ctx)).CreateStudent(ctx.Request().Context(), form, avatar); err != nil {
		return errors.Wrap(err, "creating student")
	}
	return redirectBack(ctx, "/students/class/"+form.Class, "Student created.")
}

func (app *webApp) updateStudent(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	form := bindStudentForm(ctx)
	if err := form.Validate(false); err != nil {
		return err
	}
	avatar, err := formUpload(ctx, "profile_image")
	if err != nil {
		return err
	}

	if err := app.api(currentSession(ctx)).UpdateStudent(ctx.Request().Context(), id, form, avatar); err != nil {
		return errors.Wrap(err, "updating student")
	}
	return redirectBack(ctx, "/students/class/"+form.Class, "Student updated.")
}

func (app *webApp) deleteStudent(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := app.api(currentSession(ctx)).DeleteStudent(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return redirectBack(ctx, "/students/class/"+ctx.FormValue("class"), "Student deleted.")
}

// bulkDeleteStudents removes the checked rows. The selection set is rebuilt
// from the submitted checkboxes; after the delete it is gone with the redirect,
// matching the clear-on-success contract.
func (app *webApp) bulkDeleteStudents(ctx echo.Context) error {
	classID := ctx.FormValue("class")

	form, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing bulk delete form")
	}

	m := app.studentList(app.conf.PageSize)
	for _, raw := range form["selected"] {
		if id, err := strconv.Atoi(raw); err == nil {
			m.Toggle(id)
		}
	}
	ids := m.Selected()
	if len(ids) == 0 {
		return redirectBack(ctx, "/students/class/"+classID, "Nothing selected.")
	}

	if err := app.api(currentSession(ctx)).BulkDeleteStudents(ctx.Request().Context(), ids); err != nil {
		return errors.Wrap(err, "bulk deleting students")
	}
	m.ClearSelection()
	return redirectBack(ctx, "/students/class/"+classID, "Selected students deleted.")
}
