// Package domain contains the core data structures and domain logic for the application.
package domain

// UserProfile is a snapshot of a GitHub user's public profile.
type UserProfile struct {
	Login       string `json:"login"`
	Followers   int    `json:"followers"`
	PublicRepos int    `json:"public_repos"`
	Company     string `json:"company,omitempty"`
}

// Repository is the subset of a repository listing needed for the badges.
type Repository struct {
	Name         string `json:"name"`
	Stars        int    `json:"stars"`
	Forks        int    `json:"forks"`
	LanguagesURL string `json:"languages_url"`
}

// UserStats holds everything the stats badge shows.
type UserStats struct {
	Profile UserProfile `json:"profile"`
	Stars   int         `json:"stars"`
	Forks   int         `json:"forks"`
}
