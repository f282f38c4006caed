package domain

// Status is the lifecycle stage of an article, note or page.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusInReview  Status = "in_review"
	StatusReady     Status = "ready"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Statuses contains all valid content statuses.
var Statuses = []Status{StatusDraft, StatusInReview, StatusReady, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid.
func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// Level is the grade level a study note targets.
type Level string

const (
	LevelLise9      Level = "lise-9"
	LevelLise10     Level = "lise-10"
	LevelLise11     Level = "lise-11"
	LevelLise12     Level = "lise-12"
	LevelUniversite Level = "universite"
	LevelGenel      Level = "genel"
)

// Levels contains all valid note levels.
var Levels = []Level{LevelLise9, LevelLise10, LevelLise11, LevelLise12, LevelUniversite, LevelGenel}

// IsValidLevel checks if a level is valid.
func IsValidLevel(s string) bool {
	for _, v := range Levels {
		if string(v) == s {
			return true
		}
	}
	return false
}
