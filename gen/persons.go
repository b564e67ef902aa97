package gen

import (
	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/identity"
)

// DefaultMaxEmailAttempts bounds the unique email draw per person.
const DefaultMaxEmailAttempts = 1000

// Person is the root entity of a run.
type Person struct {
	FullName string
	Email    string
	Phone    string
	Role     string
	Subteam  string
	School   string
	Grade    string
	Company  string
}

// GeneratePersons draws count persons with pairwise distinct emails.
// Each email is retried at most maxEmailAttempts times (DefaultMaxEmailAttempts
// when <= 0); exhaustion returns an error wrapping errors.ErrCapacityExhausted.
func GeneratePersons(f identity.Faker, count int, vocab Vocabulary, maxEmailAttempts int) ([]Person, error) {
	if count <= 0 {
		return []Person{}, nil
	}
	if maxEmailAttempts <= 0 {
		maxEmailAttempts = DefaultMaxEmailAttempts
	}

	roles, err := NewCategorical(vocab.Roles, vocab.RoleWeights)
	if err != nil {
		return nil, errors.Wrap(err, "role distribution")
	}

	seen := make(map[string]struct{}, count)
	persons := make([]Person, 0, count)
	for i := 0; i < count; i++ {
		name := f.Name()
		phone := f.Phone()

		email, err := uniqueEmail(f, seen, maxEmailAttempts)
		if err != nil {
			return nil, errors.Wrapf(err, "person %d of %d", i+1, count)
		}

		role := roles.Sample(f)
		grade := identity.Pick(f, vocab.Grades)
		school := schoolFor(f, vocab, grade)
		company := f.Company()

		persons = append(persons, Person{
			FullName: name,
			Email:    email,
			Phone:    phone,
			Role:     role,
			Subteam:  subteamFor(f, vocab, role),
			School:   school,
			Grade:    grade,
			Company:  company,
		})
	}
	return persons, nil
}

func uniqueEmail(f identity.Faker, seen map[string]struct{}, attempts int) (string, error) {
	for i := 0; i < attempts; i++ {
		email := f.Username() + "@" + f.FreeEmailDomain()
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		return email, nil
	}
	return "", errors.WithHint(
		errors.Wrapf(errors.ErrCapacityExhausted, "no unique email after %d attempts (%d emails taken)", attempts, len(seen)),
		"lower generation.persons or raise generation.max_email_attempts")
}

func schoolFor(f identity.Faker, vocab Vocabulary, grade string) string {
	city := f.City()
	if vocab.IsPreUniversity(grade) {
		return city + " High School"
	}
	return city + " University"
}

func subteamFor(f identity.Faker, vocab Vocabulary, role string) string {
	if !vocab.RequiresSubteam(role) {
		return ""
	}
	if fixed := vocab.RoleSubteams[role]; fixed != "" {
		return fixed
	}
	return identity.Pick(f, vocab.Subteams)
}

// Admins returns the persons whose role is adminRole.
func Admins(persons []Person, adminRole string) []Person {
	var admins []Person
	for _, p := range persons {
		if p.Role == adminRole {
			admins = append(admins, p)
		}
	}
	return admins
}
