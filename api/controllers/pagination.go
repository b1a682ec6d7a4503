package controllers

import (
	"net/http"
	"strings"

	"github.com/healthybite-ma/storefront-backend/api/validators"
	"github.com/healthybite-ma/storefront-backend/pkg/pagination"
)

func paginationParams(r *http.Request) (pagination.Params, error) {
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{
		Limit:  limit,
		Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
	}, nil
}
