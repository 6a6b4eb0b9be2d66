// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation for the
SQL-backed candidate store.

# Drivers

Open accepts two database types:

  - sqlite: modernc.org/sqlite, defaults to a private in-memory database
  - postgres: github.com/lib/pq

Usage:

	conn, err := db.Open(db.TypeSQLite, "")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Reseeding

Votes only live for the lifetime of the process. Reseed wipes the
candidate table and inserts the seed list, and is called every time a
store is opened:

	err := db.Reseed(ctx, conn, seed.Default())

# Tables

  - candidate: id, position (display order), name, votes, image, color
*/
package db
