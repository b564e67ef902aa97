package gen

import "slices"

// Vocabulary holds the categorical values generators draw from.
type Vocabulary struct {
	Roles       []string
	RoleWeights []int

	// SubteamRoles always carry a subteam; every other role never does.
	SubteamRoles []string
	// RoleSubteams pins a subteam for a role instead of drawing one from Subteams.
	RoleSubteams map[string]string
	// AdminRole owns announcements and resources.
	AdminRole string

	Grades              []string
	PreUniversityGrades []string
	Subteams            []string

	Channels      []string
	Visibilities  []string
	ResourceTypes []string
	HelpTypes     []string
	Priorities    []string
	Statuses      []string
}

// RequiresSubteam reports whether persons with role carry a subteam.
func (v Vocabulary) RequiresSubteam(role string) bool {
	return slices.Contains(v.SubteamRoles, role)
}

// IsPreUniversity reports whether grade maps to a high school.
func (v Vocabulary) IsPreUniversity(grade string) bool {
	return slices.Contains(v.PreUniversityGrades, grade)
}
