package list_properties

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/cache"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
)

var errMineRequiresAuth = errors.New("sign in to list your properties")

// Request contains search, sort and paging parameters.
type Request struct {
	Filter Filter
	Sort   string
	Order  string
	Page   string
	Limit  string

	// Caller is nil for anonymous requests.
	Caller *auth.Principal
}

// Result is one page of listings.
type Result struct {
	Properties []*contracts.PropertyDTO `json:"properties"`
	Meta       paging.Meta              `json:"meta"`
}

// Query handles property search.
type Query struct {
	readModel contracts.ReadModel
	cache     cache.Cache
	ttl       time.Duration
}

// NewQuery creates a new list properties query. Public searches are cached
// for ttl; pass cache.Noop{} to disable caching.
func NewQuery(readModel contracts.ReadModel, c cache.Cache, ttl time.Duration) *Query {
	return &Query{
		readModel: readModel,
		cache:     c,
		ttl:       ttl,
	}
}

// Execute validates paging and sorting before touching storage.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	page, err := paging.Parse(req.Page, req.Limit, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	orders, err := Sorting.Resolve(req.Sort, req.Order)
	if err != nil {
		return nil, err
	}
	conds, err := BuildFilter(req.Filter, req.Caller)
	if err != nil {
		return nil, err
	}

	cacheable := !req.Filter.Mine && (req.Caller == nil || !req.Caller.IsAdmin())
	var key string
	if cacheable {
		key = q.cacheKey(req, page)
		var cached Result
		hit, err := q.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("property search cache read failed: %v", err)
		}
		if hit {
			return &cached, nil
		}
	}

	props, total, err := q.readModel.ListProperties(ctx, contracts.ListQuery{
		Conditions: conds,
		Orders:     orders,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Properties: props,
		Meta:       page.Meta(len(props), total),
	}

	if cacheable {
		if err := q.cache.Set(ctx, key, res, q.ttl); err != nil {
			log.Printf("property search cache write failed: %v", err)
		}
	}
	return res, nil
}

func (q *Query) cacheKey(req *Request, page paging.Page) string {
	params := req.Filter.Values()
	params["sort"] = req.Sort
	params["order"] = req.Order
	params["page"] = formatInt(page.Number)
	params["limit"] = formatInt(page.Size)
	return cache.Key("properties", params)
}
