package anilist

const searchQuery = `
query ($search: String) {
  Page(page: 1, perPage: 10) {
    media(search: $search, type: ANIME, sort: POPULARITY_DESC) {
      id
      title { romaji english native }
      coverImage { extraLarge large medium }
      genres
      format
      status
      description
      averageScore
    }
  }
}`

const mediaByIDQuery = `
query ($id: Int) {
  Media(id: $id, type: ANIME) {
    id
    title { romaji english native }
    coverImage { extraLarge large medium }
    genres
    format
    status
    description
    averageScore
  }
}`

const seasonQuery = `
query ($season: MediaSeason, $year: Int, $page: Int) {
  Page(page: $page, perPage: 50) {
    pageInfo { hasNextPage }
    media(
      season: $season,
      seasonYear: $year,
      type: ANIME,
      format_in: [TV, TV_SHORT, ONA, MOVIE, SPECIAL],
      sort: POPULARITY_DESC
    ) {
      id
      title { romaji english native }
      coverImage { extraLarge large medium }
      genres
      format
      status
      episodes
      nextAiringEpisode { airingAt episode }
    }
  }
}`
