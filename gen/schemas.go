package gen

import "github.com/teranos/eventgen/table"

// Table names, also the file base names within a run directory.
const (
	TablePersons       = "persons"
	TableQRCodes       = "qrcodes"
	TableRooms         = "rooms"
	TableSchedule      = "schedule_events"
	TableAnnouncements = "announcements"
	TableResources     = "resources"
	TableHelpRequests  = "help_requests"
)

var (
	PersonSchema = table.Schema{
		Name:    TablePersons,
		Columns: []string{"full_name", "email", "phone", "role", "subteam", "school", "grade", "company"},
	}
	QRCodeSchema = table.Schema{
		Name:    TableQRCodes,
		Columns: []string{"email", "full_name", "url"},
	}
	RoomSchema = table.Schema{
		Name:    TableRooms,
		Columns: []string{"email", "full_name", "room_number", "details"},
	}
	ScheduleSchema = table.Schema{
		Name: TableSchedule,
		Columns: []string{"email", "full_name", "subteam", "day", "start_time", "end_time",
			"room", "zoom_url", "title", "description", "speaker"},
	}
	AnnouncementSchema = table.Schema{
		Name: TableAnnouncements,
		Columns: []string{"created_at", "channel", "visibility", "title", "message",
			"email", "full_name", "role", "subteam"},
	}
	ResourceSchema = table.Schema{
		Name: TableResources,
		Columns: []string{"created_at", "title", "type", "url", "visibility",
			"email", "full_name", "role", "subteam"},
	}
	HelpRequestSchema = table.Schema{
		Name: TableHelpRequests,
		Columns: []string{"created_at", "help_type", "priority", "status", "details",
			"email", "full_name", "role", "subteam"},
	}
)

// Schemas lists every run table in write order.
func Schemas() []table.Schema {
	return []table.Schema{
		PersonSchema, QRCodeSchema, RoomSchema, ScheduleSchema,
		AnnouncementSchema, ResourceSchema, HelpRequestSchema,
	}
}

// EventColumns identify a distinct event among schedule rows.
var EventColumns = []string{"day", "start_time", "end_time", "room", "zoom_url", "title", "description", "speaker"}

// Rower is implemented by every generated record.
type Rower interface {
	Row() table.Row
}

// Rows converts records into table rows.
func Rows[T Rower](records []T) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	return rows
}

func (p Person) Row() table.Row {
	return table.Row{
		"full_name": p.FullName,
		"email":     p.Email,
		"phone":     p.Phone,
		"role":      p.Role,
		"subteam":   p.Subteam,
		"school":    p.School,
		"grade":     p.Grade,
		"company":   p.Company,
	}
}

func (q QRCode) Row() table.Row {
	return table.Row{"email": q.Email, "full_name": q.FullName, "url": q.URL}
}

func (r Room) Row() table.Row {
	return table.Row{
		"email":       r.Email,
		"full_name":   r.FullName,
		"room_number": r.RoomNumber,
		"details":     r.Details,
	}
}

func (a ScheduleAssignment) Row() table.Row {
	return table.Row{
		"email":       a.Email,
		"full_name":   a.FullName,
		"subteam":     a.Subteam,
		"day":         a.Day,
		"start_time":  a.StartTime,
		"end_time":    a.EndTime,
		"room":        a.Room,
		"zoom_url":    a.ZoomURL,
		"title":       a.Title,
		"description": a.Description,
		"speaker":     a.Speaker,
	}
}

func (o Owner) fill(row table.Row) table.Row {
	row["email"] = o.Email
	row["full_name"] = o.FullName
	row["role"] = o.Role
	row["subteam"] = o.Subteam
	return row
}

func (a Announcement) Row() table.Row {
	return a.Owner.fill(table.Row{
		"created_at": millis(a.CreatedAt),
		"channel":    a.Channel,
		"visibility": a.Visibility,
		"title":      a.Title,
		"message":    a.Message,
	})
}

func (r Resource) Row() table.Row {
	return r.Owner.fill(table.Row{
		"created_at": millis(r.CreatedAt),
		"title":      r.Title,
		"type":       r.Type,
		"url":        r.URL,
		"visibility": r.Visibility,
	})
}

func (h HelpRequest) Row() table.Row {
	return h.Owner.fill(table.Row{
		"created_at": millis(h.CreatedAt),
		"help_type":  h.HelpType,
		"priority":   h.Priority,
		"status":     h.Status,
		"details":    h.Details,
	})
}
