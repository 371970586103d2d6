// Command aniweek is the terminal client for the aniweek daemon. It talks
// JSON-RPC over the daemon's Unix socket and renders collection views,
// seasonal imports, metadata search, transfer, and theme selection.
package main
