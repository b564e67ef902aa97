package gen

import (
	"fmt"
	"time"

	"github.com/teranos/eventgen/identity"
)

const (
	// DayOrigin is the start of the first slot, in minutes after midnight.
	DayOrigin = 9 * 60
	// SlotCadence is the distance between consecutive slot starts, in minutes.
	SlotCadence = 60
	// SlotDuration is the length of every slot, in minutes.
	SlotDuration = 50

	// ZoomBaseURL prefixes the 10-digit meeting number of a virtual event.
	ZoomBaseURL = "https://zoom.example.com/j/"
)

// ScheduleOptions shapes the day/slot/event lattice.
type ScheduleOptions struct {
	Days                   int
	SlotsPerDayBase        int
	SlotsPerDayVariation   int
	EventsPerSlotBase      int
	EventsPerSlotVariation int
}

// Event is one candidate offering within a slot. Exactly one of Room and
// ZoomURL is set.
type Event struct {
	Day         string
	StartTime   string
	EndTime     string
	Room        string
	ZoomURL     string
	Title       string
	Description string
	Speaker     string
}

// Virtual reports whether the event is delivered online.
func (e Event) Virtual() bool { return e.ZoomURL != "" }

// Slot is a time window with its competing candidate events.
type Slot struct {
	Day       string
	StartTime string
	EndTime   string
	Events    []Event
}

// ScheduleAssignment joins one person to the event they attend in one slot.
type ScheduleAssignment struct {
	Email    string
	FullName string
	Subteam  string
	Event
}

// Schedule is the generated lattice plus one assignment per (person, slot).
type Schedule struct {
	Slots       []Slot
	Assignments []ScheduleAssignment
}

// GenerateSchedule builds opts.Days days of slots, draws candidate events per
// slot, and assigns every person one event per slot. Attendance across a slot's
// events is not balanced.
func GenerateSchedule(f identity.Faker, persons []Person, opts ScheduleOptions) Schedule {
	var schedule Schedule
	for d := 0; d < opts.Days; d++ {
		day := fmt.Sprintf("Day %d", d+1)
		slotCount := DrawClamped(f, opts.SlotsPerDayBase, opts.SlotsPerDayVariation)

		for s := 0; s < slotCount; s++ {
			start := DayOrigin + SlotCadence*s
			slot := Slot{
				Day:       day,
				StartTime: clock(start),
				EndTime:   clock(start + SlotDuration),
			}

			eventCount := DrawClamped(f, opts.EventsPerSlotBase, opts.EventsPerSlotVariation)
			slot.Events = make([]Event, 0, eventCount)
			for e := 0; e < eventCount; e++ {
				slot.Events = append(slot.Events, newEvent(f, slot))
			}

			for _, p := range persons {
				event := slot.Events[f.IntRange(0, len(slot.Events)-1)]
				schedule.Assignments = append(schedule.Assignments, ScheduleAssignment{
					Email:    p.Email,
					FullName: p.FullName,
					Subteam:  p.Subteam,
					Event:    event,
				})
			}
			schedule.Slots = append(schedule.Slots, slot)
		}
	}
	return schedule
}

func newEvent(f identity.Faker, slot Slot) Event {
	event := Event{
		Day:       slot.Day,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}
	if f.Bool() {
		event.Room = RoomCode(f)
	} else {
		event.ZoomURL = ZoomURL(f)
	}
	event.Title = f.Sentence(6)
	event.Description = f.Sentence(10) + " " + f.Sentence(10)
	event.Speaker = f.Name()
	return event
}

// ZoomURL draws a virtual meeting URL with a 10-digit meeting number.
func ZoomURL(f identity.Faker) string {
	// two draws keep the number within a 32-bit int
	return fmt.Sprintf("%s%d%05d", ZoomBaseURL, f.IntRange(10000, 99999), f.IntRange(0, 99999))
}

// clock formats minutes after midnight as zero-padded 24-hour HH:MM.
func clock(minutes int) string {
	return time.Date(0, 1, 1, 0, minutes, 0, 0, time.UTC).Format("15:04")
}
