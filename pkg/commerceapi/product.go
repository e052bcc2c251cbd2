package commerceapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ProductBySKU returns the product with the given SKU. The SKU is
// escaped into the request path.
func (c *Client) ProductBySKU(ctx context.Context, sku string) (json.RawMessage, error) {
	return c.Do(ctx, "mcpdata/product/sku/"+url.PathEscape(sku))
}

// ProductsByIDs returns the products with the given identifiers. The
// identifiers are comma-joined and escaped as a single path segment,
// which is what the upstream endpoint expects.
func (c *Client) ProductsByIDs(ctx context.Context, ids []string) (json.RawMessage, error) {
	return c.Do(ctx, "mcpdata/products/ids/"+url.PathEscape(strings.Join(ids, ",")))
}

// ProductCategories returns the categories for the product with the
// given SKU.
func (c *Client) ProductCategories(ctx context.Context, sku string) (json.RawMessage, error) {
	return c.Do(ctx, "mcpdata/product/categories/"+url.PathEscape(sku))
}

// SearchProducts performs a paged product search.
func (c *Client) SearchProducts(ctx context.Context, req *SearchRequest) (json.RawMessage, error) {
	return c.Do(ctx, "mcpdata/products/search", OptQuery(req.Values()))
}
