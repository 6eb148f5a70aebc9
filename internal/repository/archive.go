// Package repository contains the durable archive collaborator.
// The in-memory store is the authoritative state of the system;
// the archive mirrors registrations and reservation lifecycle
// events into MySQL so that state survives the process when a
// database is configured.  Writes are best-effort: every method
// logs its own failure and returns the error, and callers are free
// to ignore it without interrupting the request.
package repository

import (
	"context"
	"database/sql"
	"log"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// Archive journals store mutations into MySQL.
type Archive struct {
	db *sql.DB
}

// NewArchive returns an Archive bound to the given database.
func NewArchive(db *sql.DB) *Archive { return &Archive{db: db} }

// schema holds the archive tables.  Reservations are keyed by
// (username, reservation_number) because numbering is per-user.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username      VARCHAR(64)  NOT NULL PRIMARY KEY,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(16)  NOT NULL,
		country       VARCHAR(64)  NOT NULL,
		city          VARCHAR(64)  NOT NULL,
		street        VARCHAR(255) NOT NULL DEFAULT '',
		created_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		name             VARCHAR(255) NOT NULL PRIMARY KEY,
		manager_username VARCHAR(64)  NOT NULL,
		type             VARCHAR(64)  NOT NULL,
		description      TEXT         NOT NULL,
		start_hour       TINYINT      NOT NULL,
		end_hour         TINYINT      NOT NULL,
		country          VARCHAR(64)  NOT NULL,
		city             VARCHAR(64)  NOT NULL,
		street           VARCHAR(255) NOT NULL,
		created_at       TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS tables (
		restaurant_name VARCHAR(255) NOT NULL,
		table_number    INT          NOT NULL,
		seats_count     INT          NOT NULL,
		PRIMARY KEY (restaurant_name, table_number)
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		username           VARCHAR(64)  NOT NULL,
		reservation_number INT          NOT NULL,
		restaurant_name    VARCHAR(255) NOT NULL,
		table_number       INT          NOT NULL,
		slot_at            DATETIME     NOT NULL,
		cancelled          TINYINT(1)   NOT NULL DEFAULT 0,
		created_at         TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (username, reservation_number)
	)`,
}

// EnsureSchema creates the archive tables when they do not exist.
func (a *Archive) EnsureSchema(ctx context.Context) error {
	for _, q := range schema {
		if _, err := a.db.ExecContext(ctx, q); err != nil {
			log.Printf("archive: ensure schema failed: %v", err)
			return err
		}
	}
	return nil
}

// SaveUser mirrors a successful registration.
func (a *Archive) SaveUser(ctx context.Context, u model.User) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, role, country, city, street) VALUES (?,?,?,?,?,?,?)`,
		u.Username, u.Email, u.PasswordHash, string(u.Role), u.Address.Country, u.Address.City, u.Address.Street)
	if err != nil {
		log.Printf("archive: save user %q failed: %v", u.Username, err)
	}
	return err
}

// SaveRestaurant mirrors a successful restaurant creation.
func (a *Archive) SaveRestaurant(ctx context.Context, r model.Restaurant) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO restaurants (name, manager_username, type, description, start_hour, end_hour, country, city, street) VALUES (?,?,?,?,?,?,?,?,?)`,
		r.Name, r.ManagerUsername, r.Type, r.Description,
		r.WorkingHours.Start.Hour, r.WorkingHours.End.Hour,
		r.Address.Country, r.Address.City, r.Address.Street)
	if err != nil {
		log.Printf("archive: save restaurant %q failed: %v", r.Name, err)
	}
	return err
}

// SaveTable mirrors a table added to a restaurant.
func (a *Archive) SaveTable(ctx context.Context, restaurantName string, t model.Table) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO tables (restaurant_name, table_number, seats_count) VALUES (?,?,?)`,
		restaurantName, t.TableNumber, t.SeatsCount)
	if err != nil {
		log.Printf("archive: save table %d of %q failed: %v", t.TableNumber, restaurantName, err)
	}
	return err
}

// SaveReservation mirrors a confirmed reservation.
func (a *Archive) SaveReservation(ctx context.Context, r model.Reservation) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO reservations (username, reservation_number, restaurant_name, table_number, slot_at) VALUES (?,?,?,?,?)`,
		r.Username, r.Number, r.RestaurantName, r.TableNumber, r.Datetime.UTC())
	if err != nil {
		log.Printf("archive: save reservation %d of %q failed: %v", r.Number, r.Username, err)
	}
	return err
}

// MarkCancelled mirrors a cancellation.  The row stays in place;
// only the flag flips, matching the soft-delete semantics of the
// store.
func (a *Archive) MarkCancelled(ctx context.Context, username string, reservationNumber int) error {
	_, err := a.db.ExecContext(ctx,
		`UPDATE reservations SET cancelled = 1 WHERE username = ? AND reservation_number = ?`,
		username, reservationNumber)
	if err != nil {
		log.Printf("archive: mark reservation %d of %q cancelled failed: %v", reservationNumber, username, err)
	}
	return err
}
