package repository

import (
	"context"
	"fmt"
	"time"

	"learn2drive/internal/domain"
	"learn2drive/internal/repository/models"
	"learn2drive/internal/util"

	"github.com/jmoiron/sqlx"
)

const itemColumns = `i.id, i.kind, i.group_key, g.name AS group_name, i.prompt, i.detail,
		i.choices, i.correct_key, i.max_points, i.order_index, i.created_at`

const itemFrom = `FROM assessment_items i
	JOIN item_groups g ON g.kind = i.kind AND g.group_key = i.group_key`

// CatalogDatabaseAdapter implements domain.CatalogRepository using sqlx.
type CatalogDatabaseAdapter struct {
	db *sqlx.DB
}

func NewCatalogDatabaseAdapter(db *sqlx.DB) domain.CatalogRepository {
	return &CatalogDatabaseAdapter{db: db}
}

func toDomainItem(m *models.AssessmentItem) domain.AssessmentItem {
	choices := []string(m.Choices)
	if len(choices) == 0 {
		choices = nil
	}
	return domain.AssessmentItem{
		ID:         m.ID,
		Kind:       domain.AssessmentKind(m.Kind),
		GroupKey:   m.GroupKey,
		GroupName:  m.GroupName.String,
		Text:       m.Prompt,
		Detail:     m.Detail.String,
		Choices:    choices,
		CorrectKey: m.CorrectKey.String,
		MaxPoints:  m.MaxPoints,
		OrderIndex: m.OrderIndex,
		CreatedAt:  m.CreatedAt,
	}
}

func fromDomainItem(item *domain.AssessmentItem) *models.AssessmentItem {
	return &models.AssessmentItem{
		ID:         item.ID,
		Kind:       string(item.Kind),
		GroupKey:   item.GroupKey,
		Prompt:     item.Text,
		Detail:     util.StringToNullString(item.Detail),
		Choices:    models.StringSlice(item.Choices),
		CorrectKey: util.StringToNullString(item.CorrectKey),
		MaxPoints:  item.PointValue(),
		OrderIndex: item.OrderIndex,
		CreatedAt:  item.CreatedAt,
	}
}

func toDomainItems(rows []models.AssessmentItem) []domain.AssessmentItem {
	items := make([]domain.AssessmentItem, 0, len(rows))
	for i := range rows {
		items = append(items, toDomainItem(&rows[i]))
	}
	return items
}

// ListItems implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) ListItems(ctx context.Context, kind domain.AssessmentKind, groupKey string) ([]domain.AssessmentItem, error) {
	exec := GetExecutor(ctx, a.db)

	query := `SELECT ` + itemColumns + ` ` + itemFrom + ` WHERE i.kind = ?`
	args := []interface{}{string(kind)}
	if groupKey != "" {
		query += ` AND i.group_key = ?`
		args = append(args, groupKey)
	}
	query += ` ORDER BY g.order_index, i.order_index, i.id`

	var rows []models.AssessmentItem
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list %s items: %w", kind, err)
	}
	return toDomainItems(rows), nil
}

// GetItemsByIDs implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) GetItemsByIDs(ctx context.Context, kind domain.AssessmentKind, ids []string) ([]domain.AssessmentItem, error) {
	if len(ids) == 0 {
		return []domain.AssessmentItem{}, nil
	}
	exec := GetExecutor(ctx, a.db)

	query := `SELECT ` + itemColumns + ` ` + itemFrom + ` WHERE i.kind = ? AND i.id IN (?)`
	rows, err := selectIn[models.AssessmentItem](ctx, exec, query, ids, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to get %s items by ids: %w", kind, err)
	}
	return toDomainItems(rows), nil
}

// ListGroups implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) ListGroups(ctx context.Context, kind domain.AssessmentKind) ([]domain.ItemGroup, error) {
	exec := GetExecutor(ctx, a.db)

	query := `SELECT g.kind, g.group_key, g.name, g.description, g.order_index,
		COUNT(i.id) AS item_count, COALESCE(SUM(i.max_points), 0) AS max_points
	FROM item_groups g
	LEFT JOIN assessment_items i ON i.kind = g.kind AND i.group_key = g.group_key
	WHERE g.kind = ?
	GROUP BY g.kind, g.group_key, g.name, g.description, g.order_index
	ORDER BY g.order_index, g.group_key`

	var rows []models.ItemGroup
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), string(kind)); err != nil {
		return nil, fmt.Errorf("failed to list %s groups: %w", kind, err)
	}

	groups := make([]domain.ItemGroup, 0, len(rows))
	for _, r := range rows {
		groups = append(groups, domain.ItemGroup{
			Key:         r.GroupKey,
			Kind:        domain.AssessmentKind(r.Kind),
			Name:        r.Name,
			Description: r.Description.String,
			OrderIndex:  r.OrderIndex,
			ItemCount:   r.ItemCount,
			MaxPoints:   r.MaxPoints,
		})
	}
	return groups, nil
}

// GroupExists implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) GroupExists(ctx context.Context, kind domain.AssessmentKind, groupKey string) (bool, error) {
	exec := GetExecutor(ctx, a.db)

	var count int
	query := `SELECT COUNT(*) FROM item_groups WHERE kind = ? AND group_key = ?`
	if err := exec.GetContext(ctx, &count, exec.Rebind(query), string(kind), groupKey); err != nil {
		return false, fmt.Errorf("failed to check group %s: %w", groupKey, err)
	}
	return count > 0, nil
}

// CountItems implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) CountItems(ctx context.Context, kind domain.AssessmentKind) (int, error) {
	exec := GetExecutor(ctx, a.db)

	var count int
	query := `SELECT COUNT(*) FROM assessment_items WHERE kind = ?`
	if err := exec.GetContext(ctx, &count, exec.Rebind(query), string(kind)); err != nil {
		return 0, fmt.Errorf("failed to count %s items: %w", kind, err)
	}
	return count, nil
}

// SaveGroup implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) SaveGroup(ctx context.Context, group *domain.ItemGroup) error {
	exec := GetExecutor(ctx, a.db)

	query := `INSERT INTO item_groups (kind, group_key, name, description, order_index) VALUES (?, ?, ?, ?, ?)`
	_, err := exec.ExecContext(ctx, exec.Rebind(query),
		string(group.Kind),
		group.Key,
		group.Name,
		util.StringToNullString(group.Description),
		group.OrderIndex,
	)
	if err != nil {
		return fmt.Errorf("failed to save group %s: %w", group.Key, err)
	}
	return nil
}

// SaveItem implements domain.CatalogRepository. A missing id is generated.
func (a *CatalogDatabaseAdapter) SaveItem(ctx context.Context, item *domain.AssessmentItem) error {
	if item.ID == "" {
		item.ID = util.NewULID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if err := item.Validate(); err != nil {
		return err
	}

	m := fromDomainItem(item)
	exec := GetExecutor(ctx, a.db)
	query := `INSERT INTO assessment_items (
		id, kind, group_key, prompt, detail, choices, correct_key, max_points, order_index, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := exec.ExecContext(ctx, exec.Rebind(query),
		m.ID, m.Kind, m.GroupKey, m.Prompt, m.Detail, m.Choices, m.CorrectKey, m.MaxPoints, m.OrderIndex, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save item %s: %w", item.ID, err)
	}
	return nil
}
