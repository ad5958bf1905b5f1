package postgres

import (
	"testing"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
)

func TestListOpenFilters(t *testing.T) {
	t.Run("No filters still pins status to open", func(t *testing.T) {
		conditions, args := listOpenFilters(&dto.ListJobsRequest{})

		assert.Equal(t, []string{"status = $1"}, conditions)
		assert.Equal(t, []interface{}{models.JobStatusOpen}, args)
	})

	t.Run("Keyword is a substring match", func(t *testing.T) {
		conditions, args := listOpenFilters(&dto.ListJobsRequest{Keyword: "engineer"})

		assert.Contains(t, conditions, "title ILIKE $2")
		assert.Equal(t, "%engineer%", args[1])
	})

	t.Run("Location matches city or state", func(t *testing.T) {
		conditions, args := listOpenFilters(&dto.ListJobsRequest{Location: "Pune"})

		assert.Contains(t, conditions, "(location_city ILIKE $2 OR location_state ILIKE $2)")
		assert.Equal(t, "%Pune%", args[1])
	})

	t.Run("Role is an exact case-insensitive match, not a substring", func(t *testing.T) {
		conditions, args := listOpenFilters(&dto.ListJobsRequest{Role: "Backend Developer"})

		assert.Contains(t, conditions, "lower(title) = lower($2)")
		assert.Equal(t, "Backend Developer", args[1])
	})

	t.Run("All filters AND-combine in order", func(t *testing.T) {
		req := &dto.ListJobsRequest{
			Keyword:  "go",
			Location: "Bengaluru",
			JobType:  "full-time",
			WorkMode: "remote",
			Role:     "SRE",
		}

		conditions, args := listOpenFilters(req)

		assert.Len(t, conditions, 6)
		assert.Len(t, args, 6)
		assert.Equal(t, "job_type = $4", conditions[3])
		assert.Equal(t, "work_mode = $5", conditions[4])

		query := buildListQuery("SELECT * FROM jobs", conditions)
		assert.Contains(t, query, " WHERE status = $1 AND ")
		assert.Contains(t, query, " ORDER BY created_at DESC")
	})
}
