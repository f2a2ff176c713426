// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Profile is the optional one-to-one extension of a [User].
// Text attributes are pointers: nil means the value was never supplied.
type Profile struct {
	// ProfileID is the unique identifier of the profile record.
	ProfileID string `json:"id"`

	// UserID references the owning user. At most one profile exists per user.
	UserID string `json:"user"`

	Status         *string `json:"status,omitempty"`
	Company        *string `json:"company,omitempty"`
	Website        *string `json:"website,omitempty"`
	Location       *string `json:"location,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	GitHubUsername *string `json:"githubusername,omitempty"`

	// Skills keeps the order in which the user listed them.
	Skills Skills `json:"skills"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ProfileUpdate is the body of the profile submission endpoint.
// Only non-nil fields are written; omitted fields keep their stored values.
type ProfileUpdate struct {
	Status         *string `json:"status,omitempty"`
	Company        *string `json:"company,omitempty"`
	Website        *string `json:"website,omitempty"`
	Location       *string `json:"location,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	GitHubUsername *string `json:"githubusername,omitempty"`
	Skills         *Skills `json:"skills,omitempty"`
}

// IsEmpty reports whether no field was supplied.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Status == nil && u.Company == nil && u.Website == nil &&
		u.Location == nil && u.Bio == nil && u.GitHubUsername == nil && u.Skills == nil
}

// Apply copies every supplied field of u onto p.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Status != nil {
		p.Status = u.Status
	}
	if u.Company != nil {
		p.Company = u.Company
	}
	if u.Website != nil {
		p.Website = u.Website
	}
	if u.Location != nil {
		p.Location = u.Location
	}
	if u.Bio != nil {
		p.Bio = u.Bio
	}
	if u.GitHubUsername != nil {
		p.GitHubUsername = u.GitHubUsername
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
}

// Skills is an ordered list of skill names.
//
// It unmarshals from either a JSON array of strings or a single
// comma-separated string ("go, sql,docker"). Blank entries are dropped.
type Skills []string

// UnmarshalJSON implements [json.Unmarshaler].
func (s *Skills) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*s = normalizeSkills(list)
		return nil
	}

	var csv string
	if err := json.Unmarshal(b, &csv); err != nil {
		return fmt.Errorf("skills must be an array of strings or a comma-separated string: %w", err)
	}

	*s = normalizeSkills(strings.Split(csv, ","))
	return nil
}

// MarshalJSON implements [json.Marshaler]. A nil list is rendered as [].
func (s Skills) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func normalizeSkills(raw []string) Skills {
	skills := make(Skills, 0, len(raw))
	for _, skill := range raw {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}
