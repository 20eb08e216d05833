// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"
)

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open("mysql", "root@/dmless")
	if err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, err := Open(TypeSQLite, "file::memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema() call %d error = %v", i+1, err)
		}
	}

	for _, table := range []string{"job", "question", "question_option", "candidate_session", "tally_event"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
