// Package gen manufactures the interrelated records of one synthetic event run.
//
// GeneratePersons produces the root entity set; every other generator takes that
// read-only slice and an identity.Faker, and never reads files. All randomness
// flows through the Faker handle, so a fixed seed reproduces a run.
package gen
