package gen

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/identity"
)

func testVocabulary() Vocabulary {
	return Vocabulary{
		Roles:               []string{"attendee", "staff", "admin"},
		RoleWeights:         []int{70, 25, 5},
		SubteamRoles:        []string{"staff", "admin"},
		RoleSubteams:        map[string]string{"admin": "Admin"},
		AdminRole:           "admin",
		Grades:              []string{"9", "10", "11", "12", "Freshman", "Senior", "PhD"},
		PreUniversityGrades: []string{"9", "10", "11", "12"},
		Subteams:            []string{"Logistics", "Registration", "Security"},
		Channels:            []string{"email", "website"},
		Visibilities:        []string{"attendee", "staff", "shared"},
		ResourceTypes:       []string{"file", "url"},
		HelpTypes:           []string{"question", "assistance", "emergency", "other"},
		Priorities:          []string{"low", "medium", "high"},
		Statuses:            []string{"pending", "resolved", "failure"},
	}
}

// onlyRole forces every person into role.
func onlyRole(vocab Vocabulary, role string) Vocabulary {
	vocab.RoleWeights = make([]int, len(vocab.Roles))
	for i, r := range vocab.Roles {
		if r == role {
			vocab.RoleWeights[i] = 1
		}
	}
	return vocab
}

func mustPersons(t *testing.T, f identity.Faker, count int, vocab Vocabulary) []Person {
	t.Helper()
	persons, err := GeneratePersons(f, count, vocab, 0)
	require.NoError(t, err)
	return persons
}

// stubFaker always returns the same username, so the email space has as many
// addresses as there are domains.
type stubFaker struct {
	*identity.GoFaker
}

func (stubFaker) Username() string        { return "sameuser" }
func (stubFaker) FreeEmailDomain() string { return "example.com" }

func TestClampedRange(t *testing.T) {
	tests := []struct {
		base, variation int
		lo, hi          int
	}{
		{base: 5, variation: 1, lo: 4, hi: 6},
		{base: 1, variation: 0, lo: 1, hi: 1},
		{base: 2, variation: 5, lo: 1, hi: 7},
		{base: 0, variation: 0, lo: 1, hi: 1},
		{base: -3, variation: 1, lo: 1, hi: 1},
		{base: 3, variation: -2, lo: 5, hi: 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d±%d", tt.base, tt.variation), func(t *testing.T) {
			lo, hi := ClampedRange(tt.base, tt.variation)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
			assert.LessOrEqual(t, lo, hi)
		})
	}
}

func TestCategorical(t *testing.T) {
	t.Run("rejects bad weights", func(t *testing.T) {
		_, err := NewCategorical([]string{"a", "b"}, []int{1})
		assert.Error(t, err)
		_, err = NewCategorical([]string{"a"}, []int{-1})
		assert.Error(t, err)
		_, err = NewCategorical([]string{"a", "b"}, []int{0, 0})
		assert.Error(t, err)
	})

	t.Run("zero weight never drawn", func(t *testing.T) {
		c, err := NewCategorical([]string{"never", "always"}, []int{0, 3})
		require.NoError(t, err)
		f := identity.New(1)
		for i := 0; i < 500; i++ {
			assert.Equal(t, "always", c.Sample(f))
		}
	})

	t.Run("roughly follows weights", func(t *testing.T) {
		c, err := NewCategorical([]string{"a", "b"}, []int{9, 1})
		require.NoError(t, err)
		f := identity.New(2)
		counts := map[string]int{}
		for i := 0; i < 5000; i++ {
			counts[c.Sample(f)]++
		}
		assert.Greater(t, counts["a"], counts["b"]*4)
		assert.Positive(t, counts["b"])
	})
}

func TestGeneratePersons(t *testing.T) {
	vocab := testVocabulary()
	persons := mustPersons(t, identity.New(42), 400, vocab)
	require.Len(t, persons, 400)

	emails := map[string]bool{}
	for _, p := range persons {
		assert.False(t, emails[p.Email], "duplicate email %s", p.Email)
		emails[p.Email] = true

		assert.NotEmpty(t, p.FullName)
		assert.NotEmpty(t, p.Phone)
		assert.NotEmpty(t, p.Company)
		assert.Contains(t, vocab.Roles, p.Role)
		assert.Contains(t, vocab.Grades, p.Grade)

		// subteam iff role requires one
		assert.Equal(t, vocab.RequiresSubteam(p.Role), p.Subteam != "", "role %s subteam %q", p.Role, p.Subteam)
		if p.Role == "admin" {
			assert.Equal(t, "Admin", p.Subteam)
		}
		if p.Role == "staff" {
			assert.Contains(t, vocab.Subteams, p.Subteam)
		}

		if vocab.IsPreUniversity(p.Grade) {
			assert.True(t, strings.HasSuffix(p.School, " High School"), p.School)
		} else {
			assert.True(t, strings.HasSuffix(p.School, " University"), p.School)
		}
	}
}

func TestGeneratePersons_ReducedRoles(t *testing.T) {
	vocab := testVocabulary()
	vocab.Roles = []string{"attendee", "staff"}
	vocab.RoleWeights = []int{70, 30}
	vocab.SubteamRoles = []string{"staff"}

	for _, p := range mustPersons(t, identity.New(8), 100, vocab) {
		assert.Equal(t, p.Role == "staff", p.Subteam != "")
	}
}

func TestGeneratePersons_Seeded(t *testing.T) {
	vocab := testVocabulary()
	a := mustPersons(t, identity.New(99), 20, vocab)
	b := mustPersons(t, identity.New(99), 20, vocab)
	assert.Equal(t, a, b)
}

func TestGeneratePersons_Zero(t *testing.T) {
	for _, count := range []int{0, -1} {
		persons, err := GeneratePersons(identity.New(1), count, testVocabulary(), 0)
		require.NoError(t, err)
		assert.Empty(t, persons)
		assert.NotNil(t, persons)
	}
}

func TestGeneratePersons_CapacityExhausted(t *testing.T) {
	f := stubFaker{identity.New(1)}

	persons, err := GeneratePersons(f, 1, testVocabulary(), 5)
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, "sameuser@example.com", persons[0].Email)

	_, err = GeneratePersons(f, 2, testVocabulary(), 5)
	require.Error(t, err)
	assert.True(t, errors.IsCapacityExhausted(err))
	assert.Contains(t, err.Error(), "person 2 of 2")
	assert.Contains(t, err.Error(), "5 attempts")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestGeneratePersons_BadWeights(t *testing.T) {
	vocab := testVocabulary()
	vocab.RoleWeights = []int{0, 0, 0}
	_, err := GeneratePersons(identity.New(1), 3, vocab, 0)
	assert.Error(t, err)
}

func TestGenerateQRCodes(t *testing.T) {
	persons := []Person{{FullName: "Ada Lovelace", Email: "ada@example.com"}}

	codes := GenerateQRCodes(persons)
	require.Len(t, codes, 1)
	assert.Equal(t, "ada@example.com", codes[0].Email)
	assert.Equal(t,
		"https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=Ada+Lovelace+%7C+ada%40example.com",
		codes[0].URL)

	u, err := url.Parse(codes[0].URL)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace | ada@example.com", u.Query().Get("data"))
}

func TestGenerateRooms(t *testing.T) {
	persons := mustPersons(t, identity.New(5), 50, testVocabulary())
	rooms := GenerateRooms(identity.New(6), persons)
	require.Len(t, rooms, len(persons))

	code := regexp.MustCompile(`^[A-F][1-6](0[0-9]|1[0-9]|2[0-5])$`)
	for i, r := range rooms {
		assert.Equal(t, persons[i].Email, r.Email)
		assert.Equal(t, persons[i].FullName, r.FullName)
		assert.Regexp(t, code, r.RoomNumber)
		assert.NotEmpty(t, r.Details)
	}
}

func TestGenerateSchedule_SingleEvent(t *testing.T) {
	persons := mustPersons(t, identity.New(3), 3, testVocabulary())

	schedule := GenerateSchedule(identity.New(4), persons, ScheduleOptions{
		Days:                   1,
		SlotsPerDayBase:        1,
		SlotsPerDayVariation:   0,
		EventsPerSlotBase:      1,
		EventsPerSlotVariation: 0,
	})

	require.Len(t, schedule.Slots, 1)
	slot := schedule.Slots[0]
	assert.Equal(t, "Day 1", slot.Day)
	assert.Equal(t, "09:00", slot.StartTime)
	assert.Equal(t, "09:50", slot.EndTime)
	require.Len(t, slot.Events, 1)

	require.Len(t, schedule.Assignments, 3)
	for i, a := range schedule.Assignments {
		assert.Equal(t, persons[i].Email, a.Email)
		assert.Equal(t, slot.Events[0], a.Event)
	}
}

func TestGenerateSchedule_Properties(t *testing.T) {
	persons := mustPersons(t, identity.New(10), 30, testVocabulary())
	opts := ScheduleOptions{
		Days:                   3,
		SlotsPerDayBase:        5,
		SlotsPerDayVariation:   1,
		EventsPerSlotBase:      2,
		EventsPerSlotVariation: 1,
	}
	schedule := GenerateSchedule(identity.New(11), persons, opts)

	slotsPerDay := map[string]int{}
	for _, s := range schedule.Slots {
		slotsPerDay[s.Day]++
		lo, hi := ClampedRange(opts.EventsPerSlotBase, opts.EventsPerSlotVariation)
		assert.GreaterOrEqual(t, len(s.Events), lo)
		assert.LessOrEqual(t, len(s.Events), hi)
		for _, e := range s.Events {
			// exactly one of room and zoom_url
			assert.NotEqual(t, e.Room == "", e.ZoomURL == "", "event %+v", e)
			if e.Virtual() {
				assert.Regexp(t, `^https://zoom\.example\.com/j/[1-9][0-9]{9}$`, e.ZoomURL)
			}
			assert.NotEmpty(t, e.Title)
			assert.NotEmpty(t, e.Speaker)
		}
	}
	require.Len(t, slotsPerDay, 3)
	lo, hi := ClampedRange(opts.SlotsPerDayBase, opts.SlotsPerDayVariation)
	for day, n := range slotsPerDay {
		assert.GreaterOrEqual(t, n, lo, day)
		assert.LessOrEqual(t, n, hi, day)
	}

	assert.Len(t, schedule.Assignments, len(schedule.Slots)*len(persons))

	byEmail := map[string]Person{}
	for _, p := range persons {
		byEmail[p.Email] = p
	}
	for _, a := range schedule.Assignments {
		p, ok := byEmail[a.Email]
		require.True(t, ok, "assignment references unknown email %s", a.Email)
		assert.Equal(t, p.FullName, a.FullName)
		assert.Equal(t, p.Subteam, a.Subteam)
	}
}

func TestGenerateSchedule_SlotTimes(t *testing.T) {
	schedule := GenerateSchedule(identity.New(1), nil, ScheduleOptions{
		Days:            1,
		SlotsPerDayBase: 4,
	})

	var starts, ends []string
	for _, s := range schedule.Slots {
		starts = append(starts, s.StartTime)
		ends = append(ends, s.EndTime)
	}
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00"}, starts)
	assert.Equal(t, []string{"09:50", "10:50", "11:50", "12:50"}, ends)
	assert.Empty(t, schedule.Assignments)
}

func TestGenerateSchedule_NoDays(t *testing.T) {
	schedule := GenerateSchedule(identity.New(1), []Person{{Email: "a@b.c"}}, ScheduleOptions{})
	assert.Empty(t, schedule.Slots)
	assert.Empty(t, schedule.Assignments)
}

func TestAdminScoped_NoAdmins(t *testing.T) {
	vocab := onlyRole(testVocabulary(), "attendee")
	persons := mustPersons(t, identity.New(12), 25, vocab)
	now := time.Now()

	assert.Empty(t, GenerateAnnouncements(identity.New(1), persons, 10, vocab, now))
	assert.Empty(t, GenerateResources(identity.New(1), persons, 10, vocab, now))
	// help requests have no role filter
	assert.Len(t, GenerateHelpRequests(identity.New(1), persons, 10, vocab, now), 10)
}

func TestAdminScoped_Owners(t *testing.T) {
	vocab := testVocabulary()
	persons := mustPersons(t, identity.New(13), 50, vocab)
	persons = append(persons, Person{FullName: "Root", Email: "root@example.com", Role: "admin", Subteam: "Admin"})
	now := time.UnixMilli(1700000000123)

	announcements := GenerateAnnouncements(identity.New(2), persons, 15, vocab, now)
	require.Len(t, announcements, 15)
	for _, a := range announcements {
		assert.Equal(t, "admin", a.Role)
		assert.Equal(t, int64(1700000000123), a.CreatedAt)
		assert.Contains(t, vocab.Channels, a.Channel)
		assert.Contains(t, vocab.Visibilities, a.Visibility)
		assert.Equal(t, "1700000000123", a.Row()["created_at"])
	}

	resources := GenerateResources(identity.New(3), persons, 15, vocab, now)
	require.Len(t, resources, 15)
	for _, r := range resources {
		assert.Equal(t, "admin", r.Role)
		assert.Contains(t, vocab.ResourceTypes, r.Type)
		assert.NotEmpty(t, r.URL)
	}
}

func TestGenerateHelpRequests(t *testing.T) {
	vocab := testVocabulary()
	now := time.Now()
	assert.Empty(t, GenerateHelpRequests(identity.New(1), nil, 10, vocab, now))

	persons := mustPersons(t, identity.New(14), 10, vocab)
	requests := GenerateHelpRequests(identity.New(4), persons, 40, vocab, now)
	require.Len(t, requests, 40)

	emails := map[string]bool{}
	for _, p := range persons {
		emails[p.Email] = true
	}
	for _, h := range requests {
		assert.True(t, emails[h.Email])
		assert.Contains(t, vocab.HelpTypes, h.HelpType)
		assert.Contains(t, vocab.Priorities, h.Priority)
		assert.Contains(t, vocab.Statuses, h.Status)
	}
}

func TestRowsCoverSchemas(t *testing.T) {
	tests := []struct {
		name   string
		row    map[string]string
		schema []string
	}{
		{"person", Person{}.Row(), PersonSchema.Columns},
		{"qrcode", QRCode{}.Row(), QRCodeSchema.Columns},
		{"room", Room{}.Row(), RoomSchema.Columns},
		{"schedule", ScheduleAssignment{}.Row(), ScheduleSchema.Columns},
		{"announcement", Announcement{}.Row(), AnnouncementSchema.Columns},
		{"resource", Resource{}.Row(), ResourceSchema.Columns},
		{"help request", HelpRequest{}.Row(), HelpRequestSchema.Columns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var keys []string
			for k := range tt.row {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			want := append([]string(nil), tt.schema...)
			sort.Strings(want)
			assert.Equal(t, want, keys)
		})
	}
}

func TestRows(t *testing.T) {
	persons := []Person{{Email: "a@example.com"}, {Email: "b@example.com"}}
	rows := Rows(persons)
	require.Len(t, rows, 2)
	assert.Equal(t, "b@example.com", rows[1]["email"])
	assert.Empty(t, Rows([]Room{}))
}
