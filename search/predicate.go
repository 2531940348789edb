package search

import (
	"fmt"
	"strings"

	"shopsight/models"
)

// BuildWhere turns keywords and filters into a parameterized WHERE clause
// for the articles table. Keyword clauses are OR'ed: a match on any
// keyword against name or type is sufficient. Filter clauses are AND'ed:
// every filter must hold. Keywords match by case-insensitive substring;
// filters by case-insensitive equality. With no keywords and no filters the
// predicate degrades to "1=1".
//
// Returns the SQL fragment and its positional arguments ($1..$n).
func BuildWhere(keywords []string, filters models.SearchFilters) (string, []interface{}, error) {
	args := []interface{}{}

	var keywordClauses []string
	for _, keyword := range keywords {
		pattern := "%" + strings.ToLower(keyword) + "%"
		args = append(args, pattern)
		nameArg := len(args)
		args = append(args, pattern)
		keywordClauses = append(keywordClauses, fmt.Sprintf(
			"(LOWER(prod_name) LIKE $%d OR LOWER(product_type_name) LIKE $%d)", nameArg, len(args)))
	}

	filterClauses, args, err := buildFilterClauses(filters, args)
	if err != nil {
		return "", nil, err
	}

	var whereParts []string
	if len(keywordClauses) > 0 {
		whereParts = append(whereParts, "("+strings.Join(keywordClauses, " OR ")+")")
	}
	if len(filterClauses) > 0 {
		whereParts = append(whereParts, strings.Join(filterClauses, " AND "))
	}

	if len(whereParts) == 0 {
		return "1=1", args, nil
	}
	return strings.Join(whereParts, " AND "), args, nil
}

func buildFilterClauses(filters models.SearchFilters, args []interface{}) ([]string, []interface{}, error) {
	var clauses []string

	if filters.Department != nil {
		if strings.TrimSpace(*filters.Department) == "" {
			return nil, nil, fmt.Errorf("%w: department must not be empty", models.ErrInvalidFilter)
		}
		args = append(args, strings.ToLower(*filters.Department))
		clauses = append(clauses, fmt.Sprintf("LOWER(department_name) = $%d", len(args)))
	}

	if filters.Color != nil {
		if strings.TrimSpace(*filters.Color) == "" {
			return nil, nil, fmt.Errorf("%w: color must not be empty", models.ErrInvalidFilter)
		}
		args = append(args, strings.ToLower(*filters.Color))
		clauses = append(clauses, fmt.Sprintf("LOWER(colour_group_name) = $%d", len(args)))
	}

	if filters.PriceMin != nil || filters.PriceMax != nil {
		if filters.PriceMin != nil && *filters.PriceMin < 0 {
			return nil, nil, fmt.Errorf("%w: price_min must not be negative", models.ErrInvalidFilter)
		}
		if filters.PriceMax != nil && *filters.PriceMax < 0 {
			return nil, nil, fmt.Errorf("%w: price_max must not be negative", models.ErrInvalidFilter)
		}
		if filters.PriceMin != nil && filters.PriceMax != nil && *filters.PriceMin > *filters.PriceMax {
			return nil, nil, fmt.Errorf("%w: price_min exceeds price_max", models.ErrInvalidFilter)
		}

		// Prices live on transactions, not articles; gate articles by their
		// average observed sale price.
		var conds []string
		if filters.PriceMin != nil {
			args = append(args, *filters.PriceMin)
			conds = append(conds, fmt.Sprintf("AVG(price) >= $%d", len(args)))
		}
		if filters.PriceMax != nil {
			args = append(args, *filters.PriceMax)
			conds = append(conds, fmt.Sprintf("AVG(price) <= $%d", len(args)))
		}
		clauses = append(clauses, fmt.Sprintf(
			"article_id IN (SELECT article_id FROM transactions GROUP BY article_id HAVING %s)",
			strings.Join(conds, " AND ")))
	}

	return clauses, args, nil
}
