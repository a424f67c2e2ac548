// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"
	"github.com/CrawX/go-mailpoll/persistence/migrations"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	migrationSource := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations.FS,
		Root:       migrations.Root,
	}

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

type dbIncomingEmail struct {
	Id               int64     `db:"id"`
	MessageId        string    `db:"message_id"`
	FromAddress      string    `db:"from_address"`
	ToAddresses      string    `db:"to_addresses"`
	Subject          string    `db:"subject"`
	Raw              string    `db:"raw"`
	Error            string    `db:"error"`
	RejectionMessage string    `db:"rejection_message"`
	CreatedAt        time.Time `db:"created_at"`
}

func (e *dbIncomingEmail) toDomain() *domain.IncomingEmail {
	return &domain.IncomingEmail{
		Id:               e.Id,
		MessageId:        e.MessageId,
		FromAddress:      e.FromAddress,
		ToAddresses:      e.ToAddresses,
		Subject:          e.Subject,
		Raw:              e.Raw,
		Error:            e.Error,
		RejectionMessage: e.RejectionMessage,
		CreatedAt:        e.CreatedAt,
	}
}

const selectIncomingEmail = `SELECT id, message_id, from_address, to_addresses, subject, raw, error, rejection_message, created_at FROM incoming_emails`

func (p *Persistence) CreateIncomingEmail(email domain.SaveIncomingEmail) (*domain.IncomingEmail, error) {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not start transaction: %w", err)
	}

	result, err := tx.Exec(
		"INSERT INTO incoming_emails(message_id, from_address, to_addresses, subject, raw, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		email.MessageId, email.FromAddress, email.ToAddresses, email.Subject, email.Raw, time.Now().UTC(),
	)
	if err != nil {
		return nil, txEnd(tx, fmt.Errorf("could not save incoming email: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, txEnd(tx, fmt.Errorf("could not get id of incoming email: %w", err))
	}

	dbEmail := dbIncomingEmail{}
	err = tx.Get(&dbEmail, selectIncomingEmail+" WHERE id = ?", id)
	if err != nil {
		return nil, txEnd(tx, fmt.Errorf("could not read back incoming email: %w", err))
	}

	err = txEnd(tx, nil)
	if err != nil {
		return nil, err
	}

	p.l.WithFields(logrus.Fields{"Id": id, "MessageId": email.MessageId}).Debug("Persisted incoming email")
	return dbEmail.toDomain(), nil
}

// FindIncomingEmail returns nil without error when no record with id exists.
func (p *Persistence) FindIncomingEmail(id int64) (*domain.IncomingEmail, error) {
	dbEmail := dbIncomingEmail{}
	err := p.db.Get(&dbEmail, selectIncomingEmail+" WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return dbEmail.toDomain(), nil
}

// RecentIncomingEmails lists the newest records first.
func (p *Persistence) RecentIncomingEmails(limit int) ([]*domain.IncomingEmail, error) {
	dbEmails := []dbIncomingEmail{}
	err := p.db.Select(&dbEmails, selectIncomingEmail+" ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	emails := make([]*domain.IncomingEmail, 0, len(dbEmails))
	for i := range dbEmails {
		emails = append(emails, dbEmails[i].toDomain())
	}
	return emails, nil
}

func (p *Persistence) SetError(id int64, errorText string) error {
	return p.updateOne("UPDATE incoming_emails SET error = ? WHERE id = ?", errorText, id)
}

func (p *Persistence) SetRejectionMessage(id int64, message string) error {
	return p.updateOne("UPDATE incoming_emails SET rejection_message = ? WHERE id = ?", message, id)
}

func (p *Persistence) updateOne(query string, value string, id int64) error {
	result, err := p.db.Exec(query, value, id)
	if err != nil {
		return fmt.Errorf("could not update incoming email: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get num of affected rows: %w", err)
	}

	if affected != 1 {
		return fmt.Errorf("unexpected number of affected rows, expected 1 got %d", affected)
	}

	return nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
