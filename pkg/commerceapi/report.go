package commerceapi

import (
	"context"
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Bestsellers returns the best selling products for a date range.
func (c *Client) Bestsellers(ctx context.Context, req *BestsellersRequest) (json.RawMessage, error) {
	return c.Do(ctx, "mcpdata/bestsellers", OptQuery(req.Values()))
}

// Revenue returns revenue figures for a date range.
func (c *Client) Revenue(ctx context.Context, req *RevenueRequest) (json.RawMessage, error) {
	return c.Do(ctx, "mcpdata/revenue", OptQuery(req.Values()))
}
