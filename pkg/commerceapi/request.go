package commerceapi

import (
	"fmt"
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ProductRequest struct {
	SKU string `json:"sku" jsonschema:"The SKU of the product to look up"`
}

type ProductsRequest struct {
	IDs []string `json:"ids" jsonschema:"The product identifiers to fetch"`
}

type SearchRequest struct {
	Query       string `json:"query,omitempty" jsonschema:"Search phrase matched against product names and descriptions. Leave empty to list all products"`
	PageSize    int    `json:"page_size,omitempty" jsonschema:"The number of results to return per page (default 10)"`
	CurrentPage int    `json:"current_page,omitempty" jsonschema:"The page of results to return (default 1)"`
}

type BestsellersRequest struct {
	DateRange string `json:"date_range,omitempty" jsonschema:"The period to report on, e.g. today, yesterday, last week, this month (default today)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"The maximum number of products to return (default 10)"`
	Status    string `json:"status,omitempty" jsonschema:"Restrict to orders with this status, e.g. complete, processing"`
}

type RevenueRequest struct {
	DateRange  string `json:"date_range,omitempty" jsonschema:"The period to report on, e.g. today, yesterday, last week, this month (default today)"`
	Status     string `json:"status,omitempty" jsonschema:"Restrict to orders with this status, e.g. complete, processing"`
	IncludeTax *bool  `json:"include_tax,omitempty" jsonschema:"Whether to include tax in the revenue figures (default true)"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultPageSize    = 10
	defaultCurrentPage = 1
	defaultDateRange   = "today"
	defaultLimit       = 10
)

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values returns the query parameters for a product search. All three
// parameters are always present, even when the query is empty.
func (r *SearchRequest) Values() url.Values {
	pageSize := r.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	currentPage := r.CurrentPage
	if currentPage == 0 {
		currentPage = defaultCurrentPage
	}

	result := url.Values{}
	result.Set("query", r.Query)
	result.Set("pageSize", fmt.Sprint(pageSize))
	result.Set("currentPage", fmt.Sprint(currentPage))
	return result
}

// Values returns the query parameters for a bestsellers report. The
// status parameter is only present when provided.
func (r *BestsellersRequest) Values() url.Values {
	dateRange := r.DateRange
	if dateRange == "" {
		dateRange = defaultDateRange
	}
	limit := r.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	result := url.Values{}
	result.Set("dateRange", dateRange)
	result.Set("limit", fmt.Sprint(limit))
	if r.Status != "" {
		result.Set("status", r.Status)
	}
	return result
}

// Values returns the query parameters for a revenue report. The status
// parameter is only present when provided.
func (r *RevenueRequest) Values() url.Values {
	dateRange := r.DateRange
	if dateRange == "" {
		dateRange = defaultDateRange
	}
	includeTax := true
	if r.IncludeTax != nil {
		includeTax = *r.IncludeTax
	}

	result := url.Values{}
	result.Set("dateRange", dateRange)
	result.Set("includeTax", strconv.FormatBool(includeTax))
	if r.Status != "" {
		result.Set("status", r.Status)
	}
	return result
}
