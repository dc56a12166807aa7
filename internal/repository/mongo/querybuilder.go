package mongo

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/rensmac/portfolio-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPage  int64 = 1
	defaultLimit int64 = 10

	searchTermKey = "searchTerm"
	sortKey       = "sort"
	pageKey       = "page"
	limitKey      = "limit"
	fieldsKey     = "fields"
)

// reservedKeys are query parameters with builder semantics; every other key
// passes through as an exact-match filter on the identically named field.
var reservedKeys = map[string]bool{
	searchTermKey: true,
	sortKey:       true,
	pageKey:       true,
	limitKey:      true,
	fieldsKey:     true,
}

// QueryBuilder turns a raw query-string mapping into a filtered, sorted,
// paginated, projected find over one collection, plus pagination metadata.
// The chain methods mutate and return the builder; nothing touches the
// database until Exec or Meta. Exec and Meta share one filter document so
// the count can never disagree with the page contents.
type QueryBuilder struct {
	coll     *mongo.Collection
	params   url.Values
	clauses  []bson.M
	filter   bson.M
	findOpts *options.FindOptions
	page     int64
	limit    int64
}

// NewQueryBuilder wraps a collection with an implicit base filter (pass nil
// for none) and the raw request parameters.
func NewQueryBuilder(coll *mongo.Collection, base bson.M, params url.Values) *QueryBuilder {
	qb := &QueryBuilder{
		coll:     coll,
		params:   params,
		findOpts: options.Find(),
	}
	if len(base) > 0 {
		qb.clauses = append(qb.clauses, base)
	}
	qb.page, qb.limit = ParsePagination(params)
	return qb
}

// Search adds an OR-combined case-insensitive substring match across the
// given fields when a non-empty searchTerm parameter is present. Array
// fields match when any element contains the term.
func (qb *QueryBuilder) Search(fields ...string) *QueryBuilder {
	term := strings.TrimSpace(qb.params.Get(searchTermKey))
	if term == "" || len(fields) == 0 {
		return qb
	}

	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}})
	}
	qb.clauses = append(qb.clauses, bson.M{"$or": or})
	return qb
}

// Filter turns every non-reserved parameter into an exact-match clause;
// comma-joined values become set membership.
func (qb *QueryBuilder) Filter() *QueryBuilder {
	for key, vals := range qb.params {
		if reservedKeys[key] || len(vals) == 0 {
			continue
		}
		value := strings.TrimSpace(vals[0])
		if value == "" {
			continue
		}

		if strings.Contains(value, ",") {
			parts := splitCSV(value)
			if len(parts) == 0 {
				continue
			}
			qb.clauses = append(qb.clauses, bson.M{key: bson.M{"$in": parts}})
		} else {
			qb.clauses = append(qb.clauses, bson.M{key: value})
		}
	}
	return qb
}

// Sort applies the comma-separated sort parameter ("-" prefix for
// descending), defaulting to newest first.
func (qb *QueryBuilder) Sort() *QueryBuilder {
	qb.findOpts.SetSort(ParseSort(qb.params.Get(sortKey)))
	return qb
}

// Paginate applies skip/limit from the page/limit parameters. Malformed or
// non-positive values degrade to page 1, limit 10.
func (qb *QueryBuilder) Paginate() *QueryBuilder {
	qb.findOpts.SetSkip((qb.page - 1) * qb.limit)
	qb.findOpts.SetLimit(qb.limit)
	return qb
}

// Fields restricts the projection to the comma-separated fields parameter.
// The identity field stays included either way.
func (qb *QueryBuilder) Fields() *QueryBuilder {
	raw := strings.TrimSpace(qb.params.Get(fieldsKey))
	if raw == "" {
		return qb
	}

	projection := bson.M{}
	for _, f := range splitCSV(raw) {
		projection[f] = 1
	}
	if len(projection) > 0 {
		qb.findOpts.SetProjection(projection)
	}
	return qb
}

// Exec runs the find and decodes all matching documents into results, which
// must be a pointer to a slice.
func (qb *QueryBuilder) Exec(ctx context.Context, results any) error {
	cursor, err := qb.coll.Find(ctx, qb.filterDoc(), qb.findOpts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, results)
}

// Meta counts documents matching the same filter Exec used, ignoring
// pagination and projection.
func (qb *QueryBuilder) Meta(ctx context.Context) (*domain.ListMeta, error) {
	total, err := qb.coll.CountDocuments(ctx, qb.filterDoc())
	if err != nil {
		return nil, err
	}
	return NewListMeta(qb.page, qb.limit, total), nil
}

// filterDoc combines the accumulated clauses exactly once; subsequent calls
// reuse the same document.
func (qb *QueryBuilder) filterDoc() bson.M {
	if qb.filter != nil {
		return qb.filter
	}
	switch len(qb.clauses) {
	case 0:
		qb.filter = bson.M{}
	case 1:
		qb.filter = qb.clauses[0]
	default:
		qb.filter = bson.M{"$and": qb.clauses}
	}
	return qb.filter
}

// ParsePagination reads page/limit, falling back to 1/10 for absent,
// malformed or non-positive values.
func ParsePagination(params url.Values) (page, limit int64) {
	page = defaultPage
	limit = defaultLimit

	if raw := strings.TrimSpace(params.Get(pageKey)); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			page = v
		}
	}
	if raw := strings.TrimSpace(params.Get(limitKey)); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	return page, limit
}

// ParseSort turns "-createdAt,title" into a sort document in listed
// priority order. Empty input sorts by creation time descending.
func ParseSort(raw string) bson.D {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}

	var sort bson.D
	for _, field := range splitCSV(raw) {
		order := 1
		if strings.HasPrefix(field, "-") {
			order = -1
			field = field[1:]
		}
		if field == "" {
			continue
		}
		sort = append(sort, bson.E{Key: field, Value: order})
	}
	if len(sort) == 0 {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return sort
}

// NewListMeta derives pagination metadata; totalPage is ceil(total/limit).
func NewListMeta(page, limit, total int64) *domain.ListMeta {
	totalPage := int64(0)
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return &domain.ListMeta{Page: page, Limit: limit, Total: total, TotalPage: totalPage}
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
