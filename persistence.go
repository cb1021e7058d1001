package brainfuck

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gorm "gorm.io/gorm"
)

// PersistenceConfig describes the sqlite database that run records are
// written to. Pragmas are passed through the DSN as `_pragma=` pairs,
// options verbatim.
type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

// RunRecord is one completed (or aborted) translate+run pass.
type RunRecord struct {
	ID                   uint
	Source               string
	ProgramLength        int
	InstructionsExecuted uint
	OutputBytes          int
	ElapsedMs            int64
	Completed            bool
	MachineError         *string
	CreatedAt            time.Time
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	params := make([]string, 0, len(config.SQLitePragmas)+len(config.SQLiteOptions))
	for _, prag := range config.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, config.SQLiteOptions...)

	var path strings.Builder
	path.WriteString(filepath.Join(config.Path, config.Name))
	if len(params) > 0 {
		path.WriteRune('?')
		path.WriteString(strings.Join(params, "&"))
	}

	db, err := gorm.Open(sqlite.Open(path.String()), &gorm.Config{})

	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open database [%s]", path.String())
	}

	p := &Persistence{Config: config, DB: db}

	if err := p.migrate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) migrate() error {
	if err := p.DB.AutoMigrate(&RunRecord{}); err != nil {
		return errors.Wrap(err, "Failed to migrate run records")
	}
	return nil
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Fatalf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

// LogRun appends one run record.
func (p *Persistence) LogRun(record *RunRecord) error {
	if record == nil {
		return fmt.Errorf("RunRecord cannot be nil")
	}

	if result := p.DB.Create(record); result.Error != nil {
		return errors.Wrap(result.Error, "Failed to call gorm.Create()")
	}

	return nil
}

// RecentRuns returns up to count records, newest first.
func (p *Persistence) RecentRuns(count int) ([]*RunRecord, error) {
	var records []*RunRecord
	if result := p.DB.Order("id desc").Limit(count).Find(&records); result.Error != nil {
		return nil, errors.Wrap(result.Error, "Failed to query run records")
	}
	return records, nil
}
