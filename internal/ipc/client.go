package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Stop requests the daemon to shut down its services.
func (c *Client) Stop() (*StopResponse, error) {
	var resp StopResponse
	if err := c.client.Call("Aniweek.Stop", StopRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("Aniweek.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns collection entries matching the filter.
func (c *Client) List(req ListRequest) (*ListResponse, error) {
	var resp ListResponse
	if err := c.client.Call("Aniweek.List", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Add inserts a new entry.
func (c *Client) Add(req AddRequest) (*AddResponse, error) {
	var resp AddResponse
	if err := c.client.Call("Aniweek.Add", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToggleFavorite flips an entry's favorite flag.
func (c *Client) ToggleFavorite(id string) (*EntryResponse, error) {
	var resp EntryResponse
	if err := c.client.Call("Aniweek.ToggleFavorite", EntryRequest{ID: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Archive hides an entry from the calendar.
func (c *Client) Archive(id string) (*EntryResponse, error) {
	var resp EntryResponse
	if err := c.client.Call("Aniweek.Archive", EntryRequest{ID: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Restore returns an archived entry to active.
func (c *Client) Restore(id string) (*EntryResponse, error) {
	var resp EntryResponse
	if err := c.client.Call("Aniweek.Restore", EntryRequest{ID: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes an entry permanently.
func (c *Client) Delete(id string) error {
	var resp EntryResponse
	return c.client.Call("Aniweek.Delete", EntryRequest{ID: id}, &resp)
}

// Update replaces the editable fields of one entry.
func (c *Client) Update(req UpdateRequest) (*EntryResponse, error) {
	var resp EntryResponse
	if err := c.client.Call("Aniweek.Update", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetCover replaces an entry's cover image.
func (c *Client) SetCover(id, cover string) (*EntryResponse, error) {
	var resp EntryResponse
	if err := c.client.Call("Aniweek.SetCover", SetCoverRequest{ID: id, Cover: cover}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats returns collection aggregates.
func (c *Client) Stats() (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.client.Call("Aniweek.Stats", StatsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search queries the metadata service by title.
func (c *Client) Search(query string) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.client.Call("Aniweek.Search", SearchRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SeasonPreview shows what a seasonal import would add.
func (c *Client) SeasonPreview() (*SeasonResponse, error) {
	var resp SeasonResponse
	if err := c.client.Call("Aniweek.SeasonPreview", SeasonRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SeasonImport imports the current broadcast season.
func (c *Client) SeasonImport() (*SeasonResponse, error) {
	var resp SeasonResponse
	if err := c.client.Call("Aniweek.SeasonImport", SeasonRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpgradeCovers runs the bulk cover upgrade.
func (c *Client) UpgradeCovers() (*UpgradeCoversResponse, error) {
	var resp UpgradeCoversResponse
	if err := c.client.Call("Aniweek.UpgradeCovers", UpgradeCoversRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Export produces a portable collection document.
func (c *Client) Export() (*ExportResponse, error) {
	var resp ExportResponse
	if err := c.client.Call("Aniweek.Export", ExportRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Import replaces the collection with an exported document.
func (c *Client) Import(document string) (*ImportResponse, error) {
	var resp ImportResponse
	if err := c.client.Call("Aniweek.Import", ImportRequest{Document: document}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RestoreBackup replaces the collection with the backup snapshot.
func (c *Client) RestoreBackup() (*RestoreBackupResponse, error) {
	var resp RestoreBackupResponse
	if err := c.client.Call("Aniweek.RestoreBackup", RestoreBackupRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Clear empties the collection.
func (c *Client) Clear() (*ClearResponse, error) {
	var resp ClearResponse
	if err := c.client.Call("Aniweek.Clear", ClearRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Themes lists the theme catalog with the active selection.
func (c *Client) Themes() (*ThemesResponse, error) {
	var resp ThemesResponse
	if err := c.client.Call("Aniweek.Themes", ThemesRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetTheme changes the active theme.
func (c *Client) SetTheme(id string) (*SetThemeResponse, error) {
	var resp SetThemeResponse
	if err := c.client.Call("Aniweek.SetTheme", SetThemeRequest{ID: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
