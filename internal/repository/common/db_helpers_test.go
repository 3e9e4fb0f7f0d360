package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name        string
		skip, limit int
		want        Page
	}{
		{"defaults", 0, 0, Page{Skip: 0, Limit: DefaultLimit}},
		{"negative skip", -5, 10, Page{Skip: 0, Limit: 10}},
		{"negative limit", 3, -1, Page{Skip: 3, Limit: DefaultLimit}},
		{"capped limit", 0, MaxLimit + 1, Page{Skip: 0, Limit: MaxLimit}},
		{"as is", 20, 50, Page{Skip: 20, Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPage(tt.skip, tt.limit))
		})
	}
}

func TestPQErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
	fk := &pq.Error{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))
}
