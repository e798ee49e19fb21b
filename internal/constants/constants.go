package constants

import "time"

// Session
const (
	SessionCookieName = "meishi_session"
	SessionKeyRecent  = "recent_cards"
	MaxRecentCards    = 5
)

// Field length limits for registration
const (
	MaxLikeWordLength    = 20
	MaxNameLength        = 20
	MaxDescriptionLength = 50
	MaxSocialIDLength    = 20
)

// MaxSkillSelections bounds the multi-select skill field.
const MaxSkillSelections = 3

// DefaultCacheTTL is the freshness window for cached store reads.
const DefaultCacheTTL = 30 * time.Second

// External profile URL templates. A link is rendered only when the
// corresponding handle is non-empty.
const (
	GithubProfileURL = "https://github.com/"
	QiitaProfileURL  = "https://qiita.com/"
	XProfileURL      = "https://x.com/"
)
