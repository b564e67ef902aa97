package verify

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/teranos/eventgen/gen"
	"github.com/teranos/eventgen/run"
	"github.com/teranos/eventgen/table"
)

var (
	roomCodePattern = regexp.MustCompile(`^[A-F][1-6](0[0-9]|1[0-9]|2[0-5])$`)
	clockPattern    = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

type personRecord struct {
	FullName string `validate:"required,max=255"`
	Email    string `validate:"required,email,max=255"`
	Phone    string `validate:"required,numeric,max=32"`
	Role     string `validate:"required,role"`
	Subteam  string `validate:"max=255"`
	School   string `validate:"required,max=255"`
	Grade    string `validate:"required,grade"`
	Company  string `validate:"max=255"`
}

type qrCodeRecord struct {
	Email string `validate:"required,email"`
	URL   string `validate:"required,url,startswith=https://api.qrserver.com/"`
}

type roomRecord struct {
	Email      string `validate:"required,email"`
	RoomNumber string `validate:"required,roomcode"`
}

type scheduleRecord struct {
	Email     string `validate:"required,email"`
	Day       string `validate:"required,startswith=Day"`
	StartTime string `validate:"required,clock"`
	EndTime   string `validate:"required,clock"`
	Room      string `validate:"omitempty,roomcode"`
	ZoomURL   string `validate:"omitempty,url"`
	Title     string `validate:"required"`
	Speaker   string `validate:"required"`
}

type ownedRecord struct {
	CreatedAt string `validate:"required,numeric"`
	Email     string `validate:"required,email"`
}

// RowValidator checks the shape of individual rows.
type RowValidator struct {
	validate *validator.Validate
}

// NewRowValidator builds a validator whose role and grade rules follow vocab.
func NewRowValidator(vocab run.ManifestVocabulary) *RowValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	inVocabulary := func(values []string) validator.Func {
		return func(fl validator.FieldLevel) bool {
			return len(values) == 0 || slices.Contains(values, fl.Field().String())
		}
	}
	_ = v.RegisterValidation("role", inVocabulary(vocab.Roles))
	_ = v.RegisterValidation("grade", inVocabulary(vocab.Grades))
	_ = v.RegisterValidation("roomcode", func(fl validator.FieldLevel) bool {
		return roomCodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	v.RegisterStructValidation(validateSchedule, scheduleRecord{})

	return &RowValidator{validate: v}
}

// validateSchedule checks rules spanning fields; HH:MM compares as text.
func validateSchedule(sl validator.StructLevel) {
	r := sl.Current().Interface().(scheduleRecord)
	if r.EndTime <= r.StartTime {
		sl.ReportError(r.EndTime, "EndTime", "EndTime", "after_start", "")
	}
	if (r.Room == "") == (r.ZoomURL == "") {
		sl.ReportError(r.Room, "Room", "Room", "room_xor_zoom", "")
	}
}

// ValidateTable checks every row of t, keyed by t.Schema.Name.
// At most maxDetails violations are returned per table.
func (rv *RowValidator) ValidateTable(t table.Table) []Violation {
	var violations []Violation
	for i, row := range t.Rows {
		record := recordFor(t.Schema.Name, row)
		if record == nil {
			return nil
		}
		err := rv.validate.Struct(record)
		if err == nil {
			continue
		}
		violations = append(violations, Violation{
			Check:  "row",
			Table:  t.Schema.Name,
			Detail: fmt.Sprintf("row %d: %s", i+1, describe(err)),
		})
		if len(violations) >= maxDetails {
			break
		}
	}
	return violations
}

func recordFor(tableName string, row table.Row) interface{} {
	switch tableName {
	case gen.TablePersons:
		return &personRecord{
			FullName: row["full_name"],
			Email:    row["email"],
			Phone:    row["phone"],
			Role:     row["role"],
			Subteam:  row["subteam"],
			School:   row["school"],
			Grade:    row["grade"],
			Company:  row["company"],
		}
	case gen.TableQRCodes:
		return &qrCodeRecord{Email: row["email"], URL: row["url"]}
	case gen.TableRooms:
		return &roomRecord{Email: row["email"], RoomNumber: row["room_number"]}
	case gen.TableSchedule:
		return &scheduleRecord{
			Email:     row["email"],
			Day:       row["day"],
			StartTime: row["start_time"],
			EndTime:   row["end_time"],
			Room:      row["room"],
			ZoomURL:   row["zoom_url"],
			Title:     row["title"],
			Speaker:   row["speaker"],
		}
	case gen.TableAnnouncements, gen.TableResources, gen.TableHelpRequests:
		return &ownedRecord{CreatedAt: row["created_at"], Email: row["email"]}
	default:
		return nil
	}
}

// describe flattens validator errors into "Field failed tag" phrases.
func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		part := fe.Field() + " failed " + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
