package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vales-api/internal/domain"
	"github.com/jhoicas/vales-api/internal/domain/entity"
	"github.com/jhoicas/vales-api/internal/domain/repository"
)

var _ repository.VoucherRepository = (*VoucherRepo)(nil)

// VoucherRepo implementación de VoucherRepository sobre vales + items_mercaderia (usable con pool o tx).
type VoucherRepo struct {
	q Querier
}

// NewVoucherRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVoucherRepository(q Querier) *VoucherRepo {
	return &VoucherRepo{q: q}
}

const selectVoucher = `
	SELECT v.id, v.fecha, v.local_origen_id, o.nombre, v.local_destino_id, d.nombre,
	       v.persona_responsable, v.estado, v.creado_en
	FROM vales v
	JOIN usuarios o ON o.id = v.local_origen_id
	JOIN usuarios d ON d.id = v.local_destino_id`

// Create inserta la cabecera del vale.
func (r *VoucherRepo) Create(ctx context.Context, v *entity.Voucher) error {
	if v.State == "" {
		v.State = entity.VoucherStatePending
	}
	query := `
		INSERT INTO vales (fecha, local_origen_id, local_destino_id, persona_responsable, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, creado_en`
	err := r.q.QueryRow(ctx, query,
		v.Date, v.OriginStoreID, v.DestinationStoreID, v.ResponsiblePerson, v.State,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("local_destino_id", "local inexistente")
		}
		return fmt.Errorf("insert vale: %w", err)
	}
	return nil
}

// AddItems inserta todas las descripciones en una sola sentencia, conservando el orden.
func (r *VoucherRepo) AddItems(ctx context.Context, voucherID int64, descriptions []string) ([]entity.VoucherItem, error) {
	if len(descriptions) == 0 {
		return []entity.VoucherItem{}, nil
	}
	query := `
		INSERT INTO items_mercaderia (vale_id, descripcion)
		SELECT $1, t.descripcion
		FROM unnest($2::text[]) WITH ORDINALITY AS t(descripcion, n)
		ORDER BY t.n
		RETURNING id, vale_id, descripcion`
	rows, err := r.q.Query(ctx, query, voucherID, descriptions)
	if err != nil {
		return nil, fmt.Errorf("insert items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.VoucherItem, error) {
		var it entity.VoucherItem
		err := row.Scan(&it.ID, &it.VoucherID, &it.Description)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("insert items: %w", err)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// ReplaceItems borra los items actuales e inserta el nuevo conjunto.
func (r *VoucherRepo) ReplaceItems(ctx context.Context, voucherID int64, descriptions []string) ([]entity.VoucherItem, error) {
	if _, err := r.q.Exec(ctx, `DELETE FROM items_mercaderia WHERE vale_id = $1`, voucherID); err != nil {
		return nil, fmt.Errorf("delete items: %w", err)
	}
	return r.AddItems(ctx, voucherID, descriptions)
}

// GetByID obtiene un vale con nombres de locales e items.
func (r *VoucherRepo) GetByID(ctx context.Context, id int64) (*entity.Voucher, error) {
	return r.getOne(ctx, selectVoucher+` WHERE v.id = $1`, id)
}

// GetByIDForOrigin obtiene el vale sólo si originStoreID es su origen y bloquea la fila (SELECT FOR UPDATE).
func (r *VoucherRepo) GetByIDForOrigin(ctx context.Context, id, originStoreID int64) (*entity.Voucher, error) {
	return r.getOne(ctx, selectVoucher+` WHERE v.id = $1 AND v.local_origen_id = $2 FOR UPDATE OF v`, id, originStoreID)
}

func (r *VoucherRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Voucher, error) {
	v, err := scanVoucher(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vale: %w", err)
	}
	if err := r.attachItems(ctx, []*entity.Voucher{v}); err != nil {
		return nil, err
	}
	return v, nil
}

// List filtra en SQL por fechas, locales y estado. Orden: fecha DESC, id DESC.
func (r *VoucherRepo) List(ctx context.Context, f entity.VoucherFilter) ([]*entity.Voucher, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.DateFrom != nil {
		add("v.fecha >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("v.fecha <= $%d", *f.DateTo)
	}
	if f.OriginStoreID != 0 {
		add("v.local_origen_id = $%d", f.OriginStoreID)
	}
	if f.DestinationStoreID != 0 {
		add("v.local_destino_id = $%d", f.DestinationStoreID)
	}
	if f.StoreID != 0 {
		args = append(args, f.StoreID)
		n := len(args)
		where = append(where, fmt.Sprintf("(v.local_origen_id = $%d OR v.local_destino_id = $%d)", n, n))
	}
	if f.State != "" {
		add("v.estado = $%d", f.State)
	}

	query := selectVoucher
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY v.fecha DESC, v.id DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vale: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vales: %w", err)
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachItems carga los items de todos los vales con una sola consulta.
func (r *VoucherRepo) attachItems(ctx context.Context, vouchers []*entity.Voucher) error {
	if len(vouchers) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(vouchers))
	byID := make(map[int64]*entity.Voucher, len(vouchers))
	for _, v := range vouchers {
		v.Items = []entity.VoucherItem{}
		ids = append(ids, v.ID)
		byID[v.ID] = v
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, vale_id, descripcion
		FROM items_mercaderia
		WHERE vale_id = ANY($1)
		ORDER BY vale_id, id`, ids)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.VoucherItem
		if err := rows.Scan(&it.ID, &it.VoucherID, &it.Description); err != nil {
			return fmt.Errorf("scan item: %w", err)
		}
		if v, ok := byID[it.VoucherID]; ok {
			v.Items = append(v.Items, it)
		}
	}
	return rows.Err()
}

// Update reemplaza fecha, destino, persona responsable y estado.
func (r *VoucherRepo) Update(ctx context.Context, v *entity.Voucher) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE vales SET fecha = $2, local_destino_id = $3, persona_responsable = $4, estado = $5
		WHERE id = $1`,
		v.ID, v.Date, v.DestinationStoreID, v.ResponsiblePerson, v.State,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("local_destino_id", "local inexistente")
		}
		return fmt.Errorf("update vale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkSettled es una única sentencia condicional: sin fila afectada, el vale no existe o no es del origen.
func (r *VoucherRepo) MarkSettled(ctx context.Context, id, originStoreID int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE vales SET estado = $3
		WHERE id = $1 AND local_origen_id = $2`,
		id, originStoreID, entity.VoucherStateSettled,
	)
	if err != nil {
		return false, fmt.Errorf("settle vale: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina el vale del origen; items_mercaderia cae por ON DELETE CASCADE.
func (r *VoucherRepo) Delete(ctx context.Context, id, originStoreID int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM vales WHERE id = $1 AND local_origen_id = $2`, id, originStoreID)
	if err != nil {
		return false, fmt.Errorf("delete vale: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanVoucher(row pgx.Row) (*entity.Voucher, error) {
	var v entity.Voucher
	err := row.Scan(
		&v.ID, &v.Date, &v.OriginStoreID, &v.OriginStoreName, &v.DestinationStoreID, &v.DestinationStoreName,
		&v.ResponsiblePerson, &v.State, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
