package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/modules/taxonomy/infrastructure/persistence/models"
	"github.com/everhub/taskmeta/pkg/composables"
)

const taxonomySelectFields = `id, name, value, description, icon, color, sort_order, is_default, is_system, is_collapsed, tenant_id, organization_id, project_id, organization_team_id, created_at, updated_at`

var kindTables = map[taxonomy.Kind]string{
	taxonomy.KindStatus:           "task_statuses",
	taxonomy.KindPriority:         "task_priorities",
	taxonomy.KindSize:             "task_sizes",
	taxonomy.KindIssueType:        "issue_types",
	taxonomy.KindRelatedIssueType: "task_related_issue_types",
}

func tableFor(kind taxonomy.Kind) (string, error) {
	table, ok := kindTables[kind]
	if !ok {
		return "", errors.Errorf("unknown taxonomy kind %q", kind)
	}
	return table, nil
}

// scopeConditions renders one predicate per scope column: equality for
// identifiers the scope carries, IS NULL for the rest. There is no wildcard
// form; an absent identifier always means "must be NULL".
func scopeConditions(scope taxonomy.Scope, argOffset int) (string, []any) {
	columns := []struct {
		name string
		id   uuid.UUID
	}{
		{"tenant_id", scope.TenantID()},
		{"organization_id", scope.OrganizationID()},
		{"project_id", scope.ProjectID()},
		{"organization_team_id", scope.TeamID()},
	}

	conditions := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		if col.id == uuid.Nil {
			conditions = append(conditions, col.name+" IS NULL")
			continue
		}
		args = append(args, col.id.String())
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col.name, argOffset+len(args)))
	}
	return strings.Join(conditions, " AND "), args
}

type TaxonomyRepository struct{}

func NewTaxonomyRepository() taxonomy.Repository {
	return &TaxonomyRepository{}
}

func (r *TaxonomyRepository) GetByID(ctx context.Context, kind taxonomy.Kind, id uuid.UUID) (*taxonomy.Item, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", taxonomySelectFields, table)
	items, err := r.queryItems(ctx, kind, query, id.String())
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, taxonomy.ErrItemNotFound
	}
	return items[0], nil
}

func (r *TaxonomyRepository) FindByScope(ctx context.Context, kind taxonomy.Kind, scope taxonomy.Scope) ([]*taxonomy.Item, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	where, args := scopeConditions(scope, 0)
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY sort_order ASC, created_at ASC",
		taxonomySelectFields, table, where,
	)
	return r.queryItems(ctx, kind, query, args...)
}

func (r *TaxonomyRepository) FindDefaults(ctx context.Context, kind taxonomy.Kind) ([]*taxonomy.Item, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	where, _ := scopeConditions(taxonomy.GlobalScope(), 0)
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE is_system = true AND %s ORDER BY sort_order ASC, created_at ASC",
		taxonomySelectFields, table, where,
	)
	return r.queryItems(ctx, kind, query)
}

func (r *TaxonomyRepository) CountByScope(ctx context.Context, kind taxonomy.Kind, scope taxonomy.Scope) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := scopeConditions(scope, 0)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, where)

	var count int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count taxonomy items")
	}
	return count, nil
}

func (r *TaxonomyRepository) Create(ctx context.Context, item *taxonomy.Item) (*taxonomy.Item, error) {
	table, err := tableFor(item.Kind())
	if err != nil {
		return nil, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	m := toDBItem(item)
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`, table, taxonomySelectFields)

	var idStr string
	if err := tx.QueryRow(
		ctx,
		query,
		m.ID,
		m.Name,
		m.Value,
		m.Description,
		m.Icon,
		m.Color,
		m.SortOrder,
		m.IsDefault,
		m.IsSystem,
		m.IsCollapsed,
		m.TenantID,
		m.OrganizationID,
		m.ProjectID,
		m.OrganizationTeamID,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert taxonomy item")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, item.Kind(), id)
}

func (r *TaxonomyRepository) Update(ctx context.Context, item *taxonomy.Item) (*taxonomy.Item, error) {
	table, err := tableFor(item.Kind())
	if err != nil {
		return nil, err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	m := toDBItem(item)
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, value = $2, description = $3, icon = $4, color = $5,
			sort_order = $6, is_default = $7, is_collapsed = $8, updated_at = $9
		WHERE id = $10
	`, table)

	tag, err := tx.Exec(
		ctx,
		query,
		m.Name,
		m.Value,
		m.Description,
		m.Icon,
		m.Color,
		m.SortOrder,
		m.IsDefault,
		m.IsCollapsed,
		m.UpdatedAt,
		m.ID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update taxonomy item")
	}
	if tag.RowsAffected() == 0 {
		return nil, taxonomy.ErrItemNotFound
	}
	return r.GetByID(ctx, item.Kind(), item.ID())
}

func (r *TaxonomyRepository) Delete(ctx context.Context, kind taxonomy.Kind, id uuid.UUID) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND is_system = false", table)
	if _, err := tx.Exec(ctx, query, id.String()); err != nil {
		return errors.Wrap(err, "failed to delete taxonomy item")
	}
	return nil
}

func (r *TaxonomyRepository) UpdateOrder(ctx context.Context, kind taxonomy.Kind, id uuid.UUID, order int) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(
		"UPDATE %s SET sort_order = $1, updated_at = now() WHERE id = $2 AND is_system = false",
		table,
	)
	if _, err := tx.Exec(ctx, query, order, id.String()); err != nil {
		return errors.Wrap(err, "failed to update taxonomy item order")
	}
	return nil
}

func (r *TaxonomyRepository) ClearDefaults(ctx context.Context, kind taxonomy.Kind, scope taxonomy.Scope) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	where, args := scopeConditions(scope, 0)
	query := fmt.Sprintf(
		"UPDATE %s SET is_default = false, updated_at = now() WHERE is_default = true AND %s",
		table, where,
	)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "failed to clear taxonomy defaults")
	}
	return nil
}

func (r *TaxonomyRepository) queryItems(ctx context.Context, kind taxonomy.Kind, query string, args ...any) ([]*taxonomy.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var items []*taxonomy.Item
	for rows.Next() {
		var m models.TaxonomyItem
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Value,
			&m.Description,
			&m.Icon,
			&m.Color,
			&m.SortOrder,
			&m.IsDefault,
			&m.IsSystem,
			&m.IsCollapsed,
			&m.TenantID,
			&m.OrganizationID,
			&m.ProjectID,
			&m.OrganizationTeamID,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan taxonomy item row")
		}
		item, err := toDomainItem(kind, &m)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return items, nil
}
