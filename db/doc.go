// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configuration:

	conn, err := db.Open(cfg)

"sqlite" uses the pure-Go modernc driver and enables the foreign_keys
pragma so choice rows cascade when their question is deleted. "postgres"
uses lib/pq with pool tuning.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

	question 1──* choice

  - question: text, publication timestamp, creation timestamp
  - choice: label text and vote tally per question

The choice foreign key uses ON DELETE CASCADE: choices never outlive
their question.

# Indexes

  - question.published_at (index page ordering)
  - choice.question_id
*/
package db
