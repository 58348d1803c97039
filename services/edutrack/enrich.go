package edusvc

import (
	"context"
	"sync"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// EnrichTeachers fills in subject, phone and avatar for teacher rows from the
// teacher details endpoint. The per-teacher fetches run in parallel and are
// joined before returning; a failed fetch leaves that row as-is, enrichment is
// never fatal to the listing.
func (c *Client) EnrichTeachers(ctx context.Context, users []school.User) []school.User {
	type profile struct {
		id      int
		details school.TeacherDetails
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	profiles := make(map[int]profile)

	for _, usr := range users {
		if usr.Role != school.RoleTeacher {
			continue
		}
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			details, err := c.TeacherDetails(ctx, id)
			if err != nil {
				return
			}
			mu.Lock()
			profiles[id] = profile{id: id, details: details}
			mu.Unlock()
		}(usr.ID)
	}
	wg.Wait()

	enriched := make([]school.User, len(users))
	copy(enriched, users)
	for i, usr := range enriched {
		p, ok := profiles[usr.ID]
		if !ok {
			continue
		}
		if p.details.Subject != "" {
			enriched[i].Subject = p.details.Subject
		}
		if p.details.Phone != "" {
			enriched[i].Phone = p.details.Phone
		}
		if p.details.ProfileImageURL != "" {
			enriched[i].AvatarURL = p.details.ProfileImageURL
		}
	}
	return enriched
}

// ClassCounts fetches the roster size of every class in parallel and joins
// on all of them before returning. Classes whose roster cannot be fetched
// report a zero count.
func (c *Client) ClassCounts(ctx context.Context, classes []string) map[string]int {
	var wg sync.WaitGroup
	var mu sync.Mutex
	counts := make(map[string]int, len(classes))

	for _, classID := range classes {
		wg.Add(1)
		go func(classID string) {
			defer wg.Done()
			n, err := c.ClassCount(ctx, classID)
			if err != nil {
				return
			}
			mu.Lock()
			counts[classID] = n
			mu.Unlock()
		}(classID)
	}
	wg.Wait()
	return counts
}
