package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDSN(t *testing.T) {
	tests := map[string]string{
		"postgresql+psycopg://u:p@localhost:5432/db":  "postgresql://u:p@localhost:5432/db",
		"postgresql+psycopg2://u:p@localhost:5432/db": "postgresql://u:p@localhost:5432/db",
		"postgres://u:p@localhost:5432/db":            "postgres://u:p@localhost:5432/db",
		"  host=localhost dbname=db  ":                "host=localhost dbname=db",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeDSN(in), in)
	}
}
