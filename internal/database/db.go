package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database owns the process-wide store handle. Repositories work against the
// raw *sql.DB; gorm is used for schema provisioning only and shares the same
// connection pool.
type Database struct {
	orm *gorm.DB
	sql *sql.DB
}

func New(url string) (*Database, error) {
	sqlDB, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)

	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)

	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused.
	sqlDB.SetConnMaxLifetime(time.Hour)

	orm, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	log.Println("Connected to database successfully")

	return &Database{orm: orm, sql: sqlDB}, nil
}

func (db *Database) Migrate() error {
	err := db.orm.AutoMigrate(&User{}, &Group{}, &GroupUser{}, &Message{})
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database migration completed")
	return nil
}

// SQL exposes the shared handle repositories are constructed with.
func (db *Database) SQL() *sql.DB {
	return db.sql
}

func (db *Database) Close() error {
	return db.sql.Close()
}

// User holds one account; usernames are unique and immutable.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

// Group is immutable after creation; membership lives in GroupUser.
// The admin is not automatically a member.
type Group struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	AdminID   int64  `gorm:"not null"`
	Admin     User   `gorm:"foreignKey:AdminID"`
	CreatedAt time.Time
}

// GroupUser is one membership pair, unique per (group, user).
type GroupUser struct {
	GroupID  int64 `gorm:"primaryKey;autoIncrement:false"`
	UserID   int64 `gorm:"primaryKey;autoIncrement:false"`
	Group    Group `gorm:"foreignKey:GroupID"`
	User     User  `gorm:"foreignKey:UserID"`
	JoinedAt time.Time
}

// Message is one ledger entry, addressed to a single receiver. Group sends
// materialize one row per member at send time, with GroupID recording the
// origin group. Rows are never updated or deleted.
type Message struct {
	ID         int64  `gorm:"primaryKey"`
	SenderID   int64  `gorm:"not null"`
	ReceiverID int64  `gorm:"not null;index"`
	GroupID    *int64 `gorm:"index"`
	Sender     User   `gorm:"foreignKey:SenderID"`
	Receiver   User   `gorm:"foreignKey:ReceiverID"`
	Group      *Group `gorm:"foreignKey:GroupID"`
	Content    string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}
