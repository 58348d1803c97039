package edusvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// ParentChildren lists the student accounts linked to a parent.
func (c *Client) ParentChildren(ctx context.Context, parentID int) ([]school.Child, error) {
	var children []school.Child
	err := c.get(ctx, fmt.Sprintf("/parent/children/%d", parentID), nil, &children)
	return children, err
}

type linkChild struct {
	StudentUserID int `json:"studentUserId"`
}

// LinkChild attaches a student to a parent.
func (c *Client) LinkChild(ctx context.Context, parentID, studentUserID int) error {
	return c.send(ctx, http.MethodPost, fmt.Sprintf("/parent/children/%d", parentID), nil, linkChild{StudentUserID: studentUserID}, nil)
}

// UnlinkChild detaches a student from a parent.
func (c *Client) UnlinkChild(ctx context.Context, parentID, studentUserID int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/parent/children/%d/%d", parentID, studentUserID), nil, nil, nil)
}

// ParentProfile fetches a parent's extended profile.
func (c *Client) ParentProfile(ctx context.Context, parentID int) (school.ParentProfile, error) {
	var profile school.ParentProfile
	err := c.get(ctx, fmt.Sprintf("/parent/profile/%d", parentID), nil, &profile)
	return profile, err
}

// SaveParentProfile upserts a parent's extended profile.
func (c *Client) SaveParentProfile(ctx context.Context, parentID int, profile school.ParentProfile) error {
	return c.send(ctx, http.MethodPost, fmt.Sprintf("/parent/profile/%d", parentID), nil, profile, nil)
}

// UploadParentImage replaces a parent's profile image.
func (c *Client) UploadParentImage(ctx context.Context, parentID int, avatar Upload) error {
	return c.sendForm(ctx, http.MethodPost, fmt.Sprintf("/parent/profile/%d/image", parentID), nil, &avatar, nil)
}
