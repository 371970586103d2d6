package anilist

// Title carries the language variants AniList reports for one show.
type Title struct {
	Romaji  string `json:"romaji"`
	English string `json:"english"`
	Native  string `json:"native"`
}

// CoverImage carries the cover art variants by size.
type CoverImage struct {
	ExtraLarge string `json:"extraLarge"`
	Large      string `json:"large"`
	Medium     string `json:"medium"`
}

// NextAiring describes the next scheduled episode broadcast.
type NextAiring struct {
	AiringAt int64 `json:"airingAt"`
	Episode  int   `json:"episode"`
}

// Media is one AniList record. Optional fields stay at their zero value;
// NextAiringEpisode is nil when the source reports no upcoming broadcast.
type Media struct {
	ID                int64       `json:"id"`
	Title             Title       `json:"title"`
	CoverImage        CoverImage  `json:"coverImage"`
	Genres            []string    `json:"genres"`
	Format            string      `json:"format"`
	Status            string      `json:"status"`
	Episodes          int         `json:"episodes"`
	Description       string      `json:"description"`
	AverageScore      float64     `json:"averageScore"`
	NextAiringEpisode *NextAiring `json:"nextAiringEpisode"`
}

type pageInfo struct {
	HasNextPage bool `json:"hasNextPage"`
}

type page struct {
	PageInfo pageInfo `json:"pageInfo"`
	Media    []Media  `json:"media"`
}

type pageEnvelope struct {
	Data *struct {
		Page *page `json:"Page"`
	} `json:"data"`
}

type mediaEnvelope struct {
	Data *struct {
		Media *Media `json:"Media"`
	} `json:"data"`
}
