package specification

import (
	"testing"

	"minddock/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func dryRun(t *testing.T, specs ...Specification) *gorm.Statement {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{DryRun: true})
	require.NoError(t, err)

	query := db.Model(&model.Task{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	return query.Find(&[]model.Task{}).Statement
}

func TestOrderBy(t *testing.T) {
	sql := dryRun(t, RecentlyEdited()...).SQL.String()
	assert.Contains(t, sql, "ORDER BY updated_at DESC,id ASC")
}

func TestByStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantSQL  string
		wantVars []interface{}
	}{
		{name: "filters one status", status: "Doing", wantSQL: "WHERE status = ?", wantVars: []interface{}{"Doing"}},
		{name: "empty matches all", status: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := dryRun(t, ByStatus{Status: tt.status}, TaskDueOrder{})
			sql := stmt.SQL.String()
			if tt.wantSQL == "" {
				assert.NotContains(t, sql, "WHERE")
				assert.Empty(t, stmt.Vars)
				return
			}
			assert.Contains(t, sql, tt.wantSQL)
			assert.Equal(t, tt.wantVars, stmt.Vars)
		})
	}
}
