package edusvc

import (
	"context"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// Stats fetches the dashboard head counts.
func (c *Client) Stats(ctx context.Context) (school.Stats, error) {
	var stats school.Stats
	err := c.get(ctx, "/public-admin/stats", nil, &stats)
	return stats, err
}
