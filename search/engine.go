package search

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"shopsight/database"
	"shopsight/models"
)

// Candidate caps keep the score-and-filter pass a bounded in-memory step.
const (
	maxCandidates          = 500
	maxAnalyticsCandidates = 1000
)

const searchColumns = "article_id, prod_name, product_type_name, colour_group_name, department_name, image_url"

// Engine executes catalog queries against the read-only article store with
// predicate pushdown and column projection.
type Engine struct {
	db *database.DB
}

func NewEngine(db *database.DB) *Engine {
	return &Engine{db: db}
}

// Search returns one page of catalog rows matching the predicate together
// with the total match count. The count comes from a second filter-only
// pass so pagination metadata stays consistent with the full match set.
// An empty result is valid, not an error.
func (e *Engine) Search(ctx context.Context, keywords []string, filters models.SearchFilters, page, pageSize int) ([]models.Product, int, error) {
	where, args, err := BuildWhere(keywords, filters)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE %s
		ORDER BY article_id
		LIMIT $%d OFFSET $%d
	`, searchColumns, where, len(args)+1, len(args)+2)

	rows, err := e.db.Pool.Query(ctx, query, append(args, pageSize, offset)...)
	if err != nil {
		return nil, 0, database.WrapErr(err)
	}
	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, database.WrapErr(err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM articles WHERE %s", where)
	var total int
	if err := e.db.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, database.WrapErr(err)
	}

	return products, total, nil
}

// SearchWithConfidence fetches a bounded candidate set for the predicate,
// scores each candidate against the parsed intent, drops those below
// minConfidence and returns one page of the remainder, ordered by score.
// The returned total is the post-filter count.
func (e *Engine) SearchWithConfidence(ctx context.Context, intent models.ParsedIntent, page, pageSize int, minConfidence float64) ([]models.Product, int, error) {
	candidates, err := e.fetchCandidates(ctx, intent.Keywords, intent.Filters, candidateLimit(pageSize))
	if err != nil {
		return nil, 0, err
	}

	scored := ScoreBatch(candidates, intent, minConfidence)
	log.Printf("🔍 [SEARCH] %d candidates, %d above confidence %.2f", len(candidates), len(scored), minConfidence)

	paged := paginate(scored, page, pageSize)
	return paged, len(scored), nil
}

// AllArticleIDs returns every article id matching the predicate, for
// analytics spanning the full match set rather than one page.
func (e *Engine) AllArticleIDs(ctx context.Context, keywords []string, filters models.SearchFilters) ([]int64, error) {
	where, args, err := BuildWhere(keywords, filters)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT article_id FROM articles WHERE %s ORDER BY article_id", where)
	rows, err := e.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, database.WrapErr(err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, database.WrapErr(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapErr(err)
	}
	return ids, nil
}

// AllArticleIDsWithConfidence returns the article ids of every candidate
// passing the confidence threshold, capped for analytics workloads.
func (e *Engine) AllArticleIDsWithConfidence(ctx context.Context, intent models.ParsedIntent, minConfidence float64) ([]int64, error) {
	if minConfidence <= 0 {
		return e.AllArticleIDs(ctx, intent.Keywords, intent.Filters)
	}

	candidates, err := e.fetchCandidates(ctx, intent.Keywords, intent.Filters, maxAnalyticsCandidates)
	if err != nil {
		return nil, err
	}

	scored := ScoreBatch(candidates, intent, minConfidence)
	ids := make([]int64, 0, len(scored))
	for _, p := range scored {
		ids = append(ids, p.ArticleID)
	}
	return ids, nil
}

// ByID fetches a single article with its full display projection.
func (e *Engine) ByID(ctx context.Context, articleID int64) (*models.Product, error) {
	query := `
		SELECT article_id, prod_name, product_type_name, colour_group_name,
		       department_name, section_name, garment_group_name, image_url
		FROM articles
		WHERE article_id = $1
	`
	var p models.Product
	err := e.db.Pool.QueryRow(ctx, query, articleID).Scan(
		&p.ArticleID, &p.Name, &p.Type, &p.Color,
		&p.Department, &p.Section, &p.GarmentGroup, &p.ImageURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: article %d", models.ErrProductNotFound, articleID)
	}
	if err != nil {
		return nil, database.WrapErr(err)
	}
	return &p, nil
}

func (e *Engine) fetchCandidates(ctx context.Context, keywords []string, filters models.SearchFilters, limit int) ([]models.Product, error) {
	where, args, err := BuildWhere(keywords, filters)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE %s
		ORDER BY article_id
		LIMIT $%d
	`, searchColumns, where, len(args)+1)

	started := time.Now()
	rows, err := e.db.Pool.Query(ctx, query, append(args, limit)...)
	if err != nil {
		return nil, database.WrapErr(err)
	}
	candidates, err := scanProducts(rows)
	if err != nil {
		return nil, database.WrapErr(err)
	}
	log.Printf("🔍 [SEARCH] Candidate fetch returned %d rows in %s", len(candidates), time.Since(started))
	return candidates, nil
}

func candidateLimit(pageSize int) int {
	limit := pageSize * 25
	if limit > maxCandidates {
		limit = maxCandidates
	}
	return limit
}

// paginate slices one page out of the already-ordered scored set.
func paginate(scored []models.Product, page, pageSize int) []models.Product {
	start := (page - 1) * pageSize
	if start > len(scored) {
		start = len(scored)
	}
	end := start + pageSize
	if end > len(scored) {
		end = len(scored)
	}
	return scored[start:end]
}

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ArticleID, &p.Name, &p.Type, &p.Color, &p.Department, &p.ImageURL); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
