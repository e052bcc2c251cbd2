package commerceapi

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	commerce "github.com/mutablelogic/go-commerce"
	tool "github.com/mutablelogic/go-commerce/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type productBySku struct {
	opts []Opt
}

type productsByIds struct {
	opts []Opt
}

type searchProducts struct {
	opts []Opt
}

type productCategories struct {
	opts []Opt
}

type bestsellers struct {
	opts []Opt
}

type revenue struct {
	opts []Opt
}

var _ tool.Tool = (*productBySku)(nil)
var _ tool.Tool = (*productsByIds)(nil)
var _ tool.Tool = (*searchProducts)(nil)
var _ tool.Tool = (*productCategories)(nil)
var _ tool.Tool = (*bestsellers)(nil)
var _ tool.Tool = (*revenue)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the commerce API tools. No client is created here:
// every invocation constructs its own client from the per-call
// credentials in the context, using the given options.
func NewTools(opts ...Opt) []tool.Tool {
	return []tool.Tool{
		&productBySku{opts: opts},
		&productsByIds{opts: opts},
		&searchProducts{opts: opts},
		&productCategories{opts: opts},
		&bestsellers{opts: opts},
		&revenue{opts: opts},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRODUCT BY SKU

func (*productBySku) Name() string {
	return "get_product_by_sku"
}

func (*productBySku) Description() string {
	return "Get full details for a single product, looked up by its SKU."
}

// Return the JSON schema for the tool input
func (*productBySku) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ProductRequest](nil)
}

// Run the tool with the given input
func (t *productBySku) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ProductRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, commerce.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	client, err := NewFromContext(ctx, t.opts...)
	if err != nil {
		return nil, err
	}
	return client.ProductBySKU(ctx, req.SKU)
}

///////////////////////////////////////////////////////////////////////////////
// PRODUCTS BY IDS

func (*productsByIds) Name() string {
	return "get_products_by_ids"
}

func (*productsByIds) Description() string {
	return "Get details for one or more products by their identifiers."
}

// Return the JSON schema for the tool input
func (*productsByIds) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ProductsRequest](nil)
}

// Run the tool with the given input
func (t *productsByIds) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ProductsRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, commerce.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	client, err := NewFromContext(ctx, t.opts...)
	if err != nil {
		return nil, err
	}
	return client.ProductsByIDs(ctx, req.IDs)
}

///////////////////////////////////////////////////////////////////////////////
// SEARCH PRODUCTS

func (*searchProducts) Name() string {
	return "search_products"
}

func (*searchProducts) Description() string {
	return "Search the product catalog with an optional query and paging parameters."
}

// Return the JSON schema for the tool input
func (*searchProducts) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[SearchRequest](nil)
}

// Run the tool with the given input
func (t *searchProducts) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req SearchRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, commerce.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	client, err := NewFromContext(ctx, t.opts...)
	if err != nil {
		return nil, err
	}
	return client.SearchProducts(ctx, &req)
}

///////////////////////////////////////////////////////////////////////////////
// PRODUCT CATEGORIES

func (*productCategories) Name() string {
	return "get_product_categories"
}

func (*productCategories) Description() string {
	return "Get the categories a product belongs to, looked up by its SKU."
}

// Return the JSON schema for the tool input
func (*productCategories) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ProductRequest](nil)
}

// Run the tool with the given input
func (t *productCategories) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ProductRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, commerce.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	client, err := NewFromContext(ctx, t.opts...)
	if err != nil {
		return nil, err
	}
	return client.ProductCategories(ctx, req.SKU)
}

///////////////////////////////////////////////////////////////////////////////
// BESTSELLERS

func (*bestsellers) Name() string {
	return "get_bestsellers"
}

func (*bestsellers) Description() string {
	return "Get the best selling products for a date range, optionally restricted to an order status."
}

// Return the JSON schema for the tool input
func (*bestsellers) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BestsellersRequest](nil)
}

// Run the tool with the given input
func (t *bestsellers) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req BestsellersRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, commerce.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	client, err := NewFromContext(ctx, t.opts...)
	if err != nil {
		return nil, err
	}
	return client.Bestsellers(ctx, &req)
}

///////////////////////////////////////////////////////////////////////////////
// REVENUE

func (*revenue) Name() string {
	return "get_revenue"
}

func (*revenue) Description() string {
	return "Get revenue figures for a date range, with or without tax, optionally restricted to an order status."
}

// Return the JSON schema for the tool input
func (*revenue) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[RevenueRequest](nil)
}

// Run the tool with the given input
func (t *revenue) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req RevenueRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, commerce.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	client, err := NewFromContext(ctx, t.opts...)
	if err != nil {
		return nil, err
	}
	return client.Revenue(ctx, &req)
}
