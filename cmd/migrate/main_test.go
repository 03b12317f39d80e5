package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDDLStatements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("-- header; with semicolon\r\nCREATE TABLE a (x INT64) PRIMARY KEY (x);\r\n\r\n  CREATE INDEX a_x ON a(x);\n;\n"), 0o600))

	stmts, err := readDDLStatements(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CREATE TABLE a (x INT64) PRIMARY KEY (x)",
		"CREATE INDEX a_x ON a(x)",
	}, stmts)
}

func TestReadDDLStatements_SchemaFile(t *testing.T) {
	stmts, err := readDDLStatements(filepath.Join("..", "..", "migrations", "001_initial_schema.sql"))
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "CREATE TABLE categories")
	assert.Contains(t, stmts[1], "CREATE TABLE products")
}
