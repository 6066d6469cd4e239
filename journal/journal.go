// Package journal keeps an append-only history of the zpool / zfs commands zfstool executed.
package journal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/natefinch/atomic"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jakeogh/zfstool/runner"
)

// Entry is one line of the journal file.
type Entry struct {
	Ts       int64    `json:"ts"`
	Argv     []string `json:"argv"`
	ExitCode int      `json:"exitCode"`
	Error    string   `json:"error,omitempty"`
}

// CommandRecord is the queryable form of an Entry.
type CommandRecord struct {
	ID       uint `gorm:"primaryKey"`
	Ts       int64
	Program  string `gorm:"index"`
	Command  string
	ExitCode int
	Error    string
}

func (r *CommandRecord) Failed() bool {
	return r.ExitCode != 0 || r.Error != ""
}

type Query struct {
	// Only commands that failed or could not be started.
	Failed bool
	// Case-insensitive substring of the command line.
	Filter string
	// Most recent n records. <= 0: all.
	Limit int
}

type Journal struct {
	Path string
	Now  func() time.Time
	file *os.File
	mu   sync.Mutex
	open bool
}

func New(path string) *Journal {
	return &Journal{Path: path, Now: time.Now}
}

func (j *Journal) openFile() {
	if j.open {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.open {
		return
	}
	j.open = true
	log.Tracef("Open journal file: %s", j.Path)
	f, err := os.OpenFile(j.Path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0600)
	if err != nil {
		log.Errorf("Failed to open journal file: %v", err)
	} else {
		j.file = f
	}
}

// Record appends one executed command. Write failures are logged and otherwise ignored.
func (j *Journal) Record(args []string, exitCode int, err error) {
	j.openFile()
	if j.file == nil {
		return
	}
	entry := Entry{
		Ts:       j.Now().Unix(),
		Argv:     args,
		ExitCode: exitCode,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	buf := bytes.NewBuffer(nil)
	json.NewEncoder(buf).Encode(entry)
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, err := j.file.Write(buf.Bytes()); err != nil {
		log.Tracef("Failed to write journal file: %v", err)
	}
}

var _ runner.Recorder = (*Journal)(nil)

// Entries reads back the journal file. Malformed lines are skipped.
func (j *Journal) Entries() ([]*Entry, error) {
	contents, err := os.ReadFile(j.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []*Entry
	scanner := bufio.NewScanner(bytes.NewReader(contents))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		entry := &Entry{}
		if err := json.Unmarshal(scanner.Bytes(), entry); err != nil || len(entry.Argv) == 0 {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}

// Find returns the records matching q, most recent first.
func (j *Journal) Find(q Query) ([]*CommandRecord, error) {
	db, err := j.load()
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	tx := db.Model(&CommandRecord{})
	if q.Failed {
		tx = tx.Where("exit_code <> 0 OR error <> ''")
	}
	if q.Filter != "" {
		tx = tx.Where("LOWER(command) LIKE ?", "%"+strings.ToLower(q.Filter)+"%")
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	var records []*CommandRecord
	if err := tx.Order("ts desc").Order("id desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Replay the journal file into an in-memory database.
func (j *Journal) load() (*gorm.DB, error) {
	entries, err := j.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create journal db: %w", err)
	}
	// each connection of ":memory:" is a distinct database
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&CommandRecord{}); err != nil {
		return nil, fmt.Errorf("journal schema init error: %w", err)
	}
	if len(entries) == 0 {
		return db, nil
	}
	records := make([]*CommandRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, &CommandRecord{
			Ts:       entry.Ts,
			Program:  entry.Argv[0],
			Command:  runner.Format(entry.Argv),
			ExitCode: entry.ExitCode,
			Error:    entry.Error,
		})
	}
	if err := db.CreateInBatches(records, 100).Error; err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	return db, nil
}

// Clear truncates the journal file.
func (j *Journal) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file != nil {
		j.file.Close()
		j.file = nil
		j.open = false
	}
	if _, err := os.Stat(j.Path); os.IsNotExist(err) {
		return nil
	}
	return atomic.WriteFile(j.Path, bytes.NewReader(nil))
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.open = false
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}
