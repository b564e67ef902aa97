package run

import (
	"time"

	"github.com/teranos/eventgen/config"
	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/gen"
	"github.com/teranos/eventgen/identity"
	"github.com/teranos/eventgen/logger"
	"github.com/teranos/eventgen/table"
)

// Vocabulary converts configured vocabularies for the generators.
func Vocabulary(cfg *config.Config) gen.Vocabulary {
	v := cfg.Vocabulary
	return gen.Vocabulary{
		Roles:               v.Roles,
		RoleWeights:         v.RoleWeights,
		SubteamRoles:        v.SubteamRoles,
		RoleSubteams:        v.RoleSubteams,
		AdminRole:           v.AdminRole,
		Grades:              v.Grades,
		PreUniversityGrades: v.PreUniversityGrades,
		Subteams:            v.Subteams,
		Channels:            v.Channels,
		Visibilities:        v.Visibilities,
		ResourceTypes:       v.ResourceTypes,
		HelpTypes:           v.HelpTypes,
		Priorities:          v.Priorities,
		Statuses:            v.Statuses,
	}
}

// Generate draws every run table in memory, in write order. All tables share
// one person roster and every draw goes through f.
func Generate(f identity.Faker, cfg *config.Config, now time.Time) ([]table.Table, error) {
	g := cfg.Generation
	vocab := Vocabulary(cfg)

	persons, err := gen.GeneratePersons(f, g.Persons, vocab, cfg.GetMaxEmailAttempts())
	if err != nil {
		return nil, errors.Wrap(err, "generate persons")
	}

	rooms := gen.GenerateRooms(f, persons)
	schedule := gen.GenerateSchedule(f, persons, gen.ScheduleOptions{
		Days:                   g.Days,
		SlotsPerDayBase:        g.SlotsPerDayBase,
		SlotsPerDayVariation:   g.SlotsPerDayVariation,
		EventsPerSlotBase:      g.EventsPerSlotBase,
		EventsPerSlotVariation: g.EventsPerSlotVariation,
	})
	admins := gen.Admins(persons, vocab.AdminRole)
	if len(admins) == 0 && (g.Announcements > 0 || g.Resources > 0) {
		logger.Warnw("no admins drawn; announcements and resources will be empty", logger.FieldCount, len(persons))
	}

	tables := []table.Table{
		{Schema: gen.PersonSchema, Rows: gen.Rows(persons)},
		{Schema: gen.QRCodeSchema, Rows: gen.Rows(gen.GenerateQRCodes(persons))},
		{Schema: gen.RoomSchema, Rows: gen.Rows(rooms)},
		{Schema: gen.ScheduleSchema, Rows: gen.Rows(schedule.Assignments)},
		{Schema: gen.AnnouncementSchema, Rows: gen.Rows(gen.GenerateAnnouncements(f, persons, g.Announcements, vocab, now))},
		{Schema: gen.ResourceSchema, Rows: gen.Rows(gen.GenerateResources(f, persons, g.Resources, vocab, now))},
		{Schema: gen.HelpRequestSchema, Rows: gen.Rows(gen.GenerateHelpRequests(f, persons, g.HelpRequests, vocab, now))},
	}

	logger.Debugw("tables generated",
		logger.FieldCount, len(persons),
		"slots", len(schedule.Slots),
		"admins", len(admins),
	)
	return tables, nil
}
