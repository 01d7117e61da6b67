package sink

import (
	"context"
	"database/sql/driver"
	"strings"

	"emperror.dev/errors"
	"github.com/goccy/go-json"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/glebarez/sqlite"

	"github.com/merethin/akari/events"
)

// stringSlice persists []string as a JSON text column; gorm has no native
// mapping for a string slice and the data recipes collect is small and rare
// enough that a text blob beats a join table.
type stringSlice []string

func (s stringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	return string(b), err
}

func (s *stringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("sink: unsupported type for stringSlice column")
	}
	return json.Unmarshal(b, (*[]string)(s))
}

// parsedEventRow is the gorm model backing an event whose Event field is a
// genuine id; its primary key doubles as the event-id-is-unique constraint
// that lets a replayed or duplicate insert fall through quietly.
type parsedEventRow struct {
	Event       int64 `gorm:"primaryKey;autoIncrement:false"`
	Time        uint64
	Category    string `gorm:"index"`
	Actor       *string
	Receptor    *string
	Origin      *string
	Destination *string
	Data        stringSlice
}

// systemEventRow backs the synthetic connection-lifecycle events (Event ==
// -1), which carry no meaningful id of their own so they get an
// auto-incrementing surrogate key instead.
type systemEventRow struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement:true"`
	Time     uint64
	Category string `gorm:"index"`
	Data     stringSlice
}

// Relational writes parsed events into two tables: one for real happenings
// keyed by event id, one for synthetic system events. Either table name may
// be left empty, in which case that class of event is silently dropped,
// mirroring a sink that was only asked to track one of the two streams.
type Relational struct {
	db              *gorm.DB
	tableName       string
	systemTableName string
}

// NewRelational opens dsn through gorm, picking the postgres driver for a
// "postgres://" or "postgresql://" DSN and glebarez/sqlite (a cgo-free
// sqlite driver) otherwise, then auto-migrates whichever of tableName and
// systemTableName are non-empty.
func NewRelational(dsn, tableName, systemTableName string) (*Relational, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, errors.Wrap(err, "sink: failed to open database")
	}

	if tableName != "" {
		if err := db.Table(tableName).AutoMigrate(&parsedEventRow{}); err != nil {
			return nil, errors.Wrap(err, "sink: failed to migrate parsed event table")
		}
	}
	if systemTableName != "" {
		if err := db.Table(systemTableName).AutoMigrate(&systemEventRow{}); err != nil {
			return nil, errors.Wrap(err, "sink: failed to migrate system event table")
		}
	}

	return &Relational{db: db, tableName: tableName, systemTableName: systemTableName}, nil
}

// Publish inserts evt into the system table when Event is -1, or the main
// table otherwise, ignoring a duplicate primary key rather than erroring.
func (r *Relational) Publish(ctx context.Context, evt events.ParsedEvent) error {
	if evt.Event == -1 {
		if r.systemTableName == "" {
			return nil
		}
		row := systemEventRow{Time: evt.Time, Category: evt.Category, Data: stringSlice(evt.Data)}
		err := r.db.WithContext(ctx).Table(r.systemTableName).Create(&row).Error
		return errors.Wrap(err, "sink: failed to insert system event")
	}

	if r.tableName == "" {
		return nil
	}
	row := parsedEventRow{
		Event:       evt.Event,
		Time:        evt.Time,
		Category:    evt.Category,
		Actor:       evt.Actor,
		Receptor:    evt.Receptor,
		Origin:      evt.Origin,
		Destination: evt.Destination,
		Data:        stringSlice(evt.Data),
	}
	err := r.db.WithContext(ctx).Table(r.tableName).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	return errors.Wrap(err, "sink: failed to insert parsed event")
}

// Close releases the underlying connection pool.
func (r *Relational) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.Wrap(err, "sink: failed to access underlying database handle")
	}
	return sqlDB.Close()
}
