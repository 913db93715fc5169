package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDBQueryForTrace(t *testing.T) {
	got := formatDBQueryForTrace(" SELECT   *\nFROM matches \t WHERE championship_id = $1 ")
	assert.Equal(t, "SELECT * FROM matches WHERE championship_id = $1", got)

	assert.Empty(t, formatDBQueryForTrace(" \n "))

	long := formatDBQueryForTrace("SELECT " + strings.Repeat("x, ", 400) + "y FROM teams")
	assert.Len(t, long, maxTracedQueryLength+len("..."))
	assert.True(t, strings.HasSuffix(long, "..."))
}
