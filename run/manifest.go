package run

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	"github.com/teranos/eventgen/config"
	"github.com/teranos/eventgen/errors"
)

const (
	// ManifestFile is written last into every run directory
	ManifestFile = "manifest.toml"

	// SchemaVersion describes the table layout of a run
	SchemaVersion = "1.0.0"

	// SupportedSchemas is the manifest range this build can read
	SupportedSchemas = "^1.0.0"
)

// Manifest records how a run was produced and what it contains.
type Manifest struct {
	SchemaVersion    string    `toml:"schema_version"`
	GeneratorVersion string    `toml:"generator_version"`
	RunID            string    `toml:"run_id"`
	CreatedAt        time.Time `toml:"created_at"`
	Seed             uint64    `toml:"seed"`
	Format           string    `toml:"format"`

	Generation config.GenerationConfig `toml:"generation"`
	Vocabulary ManifestVocabulary      `toml:"vocabulary"`

	// Tables maps table name to data row count
	Tables map[string]int `toml:"tables"`
}

// ManifestVocabulary is the part of the vocabulary needed to check a run.
type ManifestVocabulary struct {
	Roles        []string `toml:"roles"`
	SubteamRoles []string `toml:"subteam_roles"`
	AdminRole    string   `toml:"admin_role"`
	Grades       []string `toml:"grades"`
}

// WriteManifest encodes m into dir/manifest.toml.
func WriteManifest(dir string, m *Manifest) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return errors.Wrap(err, "encode manifest")
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, buf.Bytes(), config.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// ReadManifest decodes dir/manifest.toml and checks its schema version.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if err := CheckSchemaVersion(m.SchemaVersion); err != nil {
		return nil, err
	}
	return &m, nil
}

// CheckSchemaVersion reports whether a run with schema version v can be read.
func CheckSchemaVersion(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return errors.Wrapf(errors.ErrIncompatibleManifest, "invalid schema version %q", v)
	}
	constraint, err := semver.NewConstraint(SupportedSchemas)
	if err != nil {
		return errors.Wrapf(err, "invalid constraint %s", SupportedSchemas)
	}
	if !constraint.Check(version) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrIncompatibleManifest, "schema %s, supported %s", v, SupportedSchemas),
			"regenerate the run with this version of eventgen")
	}
	return nil
}
