// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Post is a piece of user-generated content shown in the feed.
type Post struct {
	// PostID is the unique identifier of the post (UUIDv7 string).
	PostID string `json:"id"`

	// UserID references the author. Only the author may delete the post.
	UserID string `json:"user"`

	// Name is the author's display name captured at creation time.
	Name string `json:"name"`

	Text string `json:"text"`

	// Likes is ordered newest first and holds at most one entry per user.
	Likes Likes `json:"likes"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// LikedBy reports whether userID already appears in the like list.
func (p Post) LikedBy(userID string) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

// PostRequest is the body of the create-post endpoint.
type PostRequest struct {
	Text string `json:"text"`
}

// Like is a single user's endorsement of a post.
type Like struct {
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "post_likes"
}

// Likes is a like list ordered newest first.
type Likes []Like

// MarshalJSON implements [json.Marshaler]. A nil list is rendered as [].
func (l Likes) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Like(l))
}

// Prepend returns a new list with like placed in front.
func (l Likes) Prepend(like Like) Likes {
	out := make(Likes, 0, len(l)+1)
	out = append(out, like)
	return append(out, l...)
}
