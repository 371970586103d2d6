// Package anilist queries the AniList GraphQL endpoint for titles, cover
// art, genres, and seasonal airing schedules.
//
// Every exported call absorbs its own failures: network or decode errors are
// logged and surface to callers as empty results, matching the application
// policy that metadata lookups never crash or block a user action.
package anilist
