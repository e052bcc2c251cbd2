package commerceapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	commerceapi "github.com/mutablelogic/go-commerce/pkg/commerceapi"
	tool "github.com/mutablelogic/go-commerce/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

func TestNewTools(t *testing.T) {
	assert := assert.New(t)

	tools := commerceapi.NewTools()
	assert.Len(tools, 6)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
		assert.NotEmpty(tool.Description())
		schema, err := tool.Schema()
		assert.NoError(err)
		assert.NotNil(schema)
	}

	assert.Contains(names, "get_product_by_sku")
	assert.Contains(names, "get_products_by_ids")
	assert.Contains(names, "search_products")
	assert.Contains(names, "get_product_categories")
	assert.Contains(names, "get_bestsellers")
	assert.Contains(names, "get_revenue")
}

func TestToolSchemas(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(commerceapi.NewTools()...)
	assert.NoError(err)

	// sku is required
	schema, err := toolkit.Lookup("get_product_by_sku").Schema()
	assert.NoError(err)
	assert.Contains(schema.Properties, "sku")
	assert.Contains(schema.Required, "sku")

	// paging parameters are optional
	schema, err = toolkit.Lookup("search_products").Schema()
	assert.NoError(err)
	assert.Contains(schema.Properties, "query")
	assert.Contains(schema.Properties, "page_size")
	assert.Contains(schema.Properties, "current_page")
	assert.NotContains(schema.Required, "query")
}

func TestToolRun_MissingCredentials(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(commerceapi.NewTools()...)
	assert.NoError(err)

	// No credentials in the context, fails before any network I/O
	result, err := toolkit.Run(context.Background(), "get_product_by_sku", json.RawMessage(`{"sku":"X"}`))
	assert.Error(err)
	assert.Nil(result)
	assert.Contains(err.Error(), "Missing required headers")
}

func TestToolRun_Invocation(t *testing.T) {
	assert := assert.New(t)

	var path, rawQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"items":[]}`))
	}))
	defer upstream.Close()

	toolkit, err := tool.NewToolkit(commerceapi.NewTools()...)
	assert.NoError(err)

	ctx := commerceapi.WithCredentials(context.Background(), upstream.URL, "token")

	result, err := toolkit.Run(ctx, "get_product_by_sku", json.RawMessage(`{"sku":"SKU-1"}`))
	assert.NoError(err)
	assert.Equal(`{"items":[]}`, string(result.(json.RawMessage)))
	assert.Equal("/rest/V1/mcpdata/product/sku/SKU-1", path)

	_, err = toolkit.Run(ctx, "get_products_by_ids", json.RawMessage(`{"ids":["1","2"]}`))
	assert.NoError(err)
	assert.Equal("/rest/V1/mcpdata/products/ids/1,2", path)

	_, err = toolkit.Run(ctx, "get_product_categories", json.RawMessage(`{"sku":"SKU-1"}`))
	assert.NoError(err)
	assert.Equal("/rest/V1/mcpdata/product/categories/SKU-1", path)

	// Defaults applied when called with no arguments
	_, err = toolkit.Run(ctx, "search_products", nil)
	assert.NoError(err)
	assert.Equal("/rest/V1/mcpdata/products/search", path)
	assert.Equal("currentPage=1&pageSize=10&query=", rawQuery)

	_, err = toolkit.Run(ctx, "get_bestsellers", json.RawMessage(`{"date_range":"last week"}`))
	assert.NoError(err)
	assert.Equal("dateRange=last+week&limit=10", rawQuery)

	_, err = toolkit.Run(ctx, "get_revenue", nil)
	assert.NoError(err)
	assert.Equal("dateRange=today&includeTax=true", rawQuery)
}

func TestToolRun_ValidationRejectsMissingSku(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(commerceapi.NewTools()...)
	assert.NoError(err)

	// Schema validation happens before credentials are read
	_, err = toolkit.Run(context.Background(), "get_product_by_sku", json.RawMessage(`{}`))
	assert.Error(err)
	assert.Contains(err.Error(), "validation")
}
