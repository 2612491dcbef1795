package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Pagination holds the limit/offset pair shared by every list endpoint.
type Pagination struct {
	Limit  int
	Offset int
}

func ParsePagination(r *http.Request) (Pagination, error) {
	limit, err := ParseQueryInt(r, "limit", defaultPageSize, 1, maxPageSize)
	if err != nil {
		return Pagination{}, err
	}
	offset, err := ParseQueryInt(r, "offset", 0, 0, 1<<30)
	if err != nil {
		return Pagination{}, err
	}
	return Pagination{Limit: limit, Offset: offset}, nil
}

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}
