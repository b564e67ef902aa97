package gen

import (
	"strconv"
	"time"

	"github.com/teranos/eventgen/identity"
)

// Owner is the identity snapshot carried by owned rows.
type Owner struct {
	Email    string
	FullName string
	Role     string
	Subteam  string
}

func ownerOf(p Person) Owner {
	return Owner{Email: p.Email, FullName: p.FullName, Role: p.Role, Subteam: p.Subteam}
}

// Announcement is an admin-authored message.
type Announcement struct {
	CreatedAt  int64
	Channel    string
	Visibility string
	Title      string
	Message    string
	Owner
}

// Resource is an admin-published file or link.
type Resource struct {
	CreatedAt  int64
	Title      string
	Type       string
	URL        string
	Visibility string
	Owner
}

// HelpRequest is filed by any person.
type HelpRequest struct {
	CreatedAt int64
	HelpType  string
	Priority  string
	Status    string
	Details   string
	Owner
}

// GenerateAnnouncements draws count announcements owned by random admins.
// No admins in persons means no announcements.
func GenerateAnnouncements(f identity.Faker, persons []Person, count int, vocab Vocabulary, now time.Time) []Announcement {
	admins := Admins(persons, vocab.AdminRole)
	if len(admins) == 0 || count <= 0 {
		return []Announcement{}
	}
	createdAt := now.UnixMilli()

	out := make([]Announcement, 0, count)
	for i := 0; i < count; i++ {
		owner := pickPerson(f, admins)
		out = append(out, Announcement{
			CreatedAt:  createdAt,
			Channel:    identity.Pick(f, vocab.Channels),
			Visibility: identity.Pick(f, vocab.Visibilities),
			Title:      f.Sentence(5),
			Message:    f.Sentence(20),
			Owner:      ownerOf(owner),
		})
	}
	return out
}

// GenerateResources draws count resources owned by random admins.
// No admins in persons means no resources.
func GenerateResources(f identity.Faker, persons []Person, count int, vocab Vocabulary, now time.Time) []Resource {
	admins := Admins(persons, vocab.AdminRole)
	if len(admins) == 0 || count <= 0 {
		return []Resource{}
	}
	createdAt := now.UnixMilli()

	out := make([]Resource, 0, count)
	for i := 0; i < count; i++ {
		owner := pickPerson(f, admins)
		out = append(out, Resource{
			CreatedAt:  createdAt,
			Title:      f.Sentence(4),
			Type:       identity.Pick(f, vocab.ResourceTypes),
			URL:        f.URL(),
			Visibility: identity.Pick(f, vocab.Visibilities),
			Owner:      ownerOf(owner),
		})
	}
	return out
}

// GenerateHelpRequests draws count requests, each filed by any person.
// Empty persons means no requests.
func GenerateHelpRequests(f identity.Faker, persons []Person, count int, vocab Vocabulary, now time.Time) []HelpRequest {
	if len(persons) == 0 || count <= 0 {
		return []HelpRequest{}
	}
	createdAt := now.UnixMilli()

	out := make([]HelpRequest, 0, count)
	for i := 0; i < count; i++ {
		owner := pickPerson(f, persons)
		out = append(out, HelpRequest{
			CreatedAt: createdAt,
			HelpType:  identity.Pick(f, vocab.HelpTypes),
			Priority:  identity.Pick(f, vocab.Priorities),
			Status:    identity.Pick(f, vocab.Statuses),
			Details:   f.Sentence(15),
			Owner:     ownerOf(owner),
		})
	}
	return out
}

func pickPerson(f identity.Faker, persons []Person) Person {
	return persons[f.IntRange(0, len(persons)-1)]
}

func millis(ms int64) string {
	return strconv.FormatInt(ms, 10)
}
