package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/domain/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentRow(id, name, phase string, order int, low, high float64) []any {
	return []any{id, name, phase, order, low, high, "$/sf", ""}
}

func TestSegmentPostgresRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		db := &fakePgx{query: func(sql string, _ []any) (pgx.Rows, error) {
			return &fakeRows{rows: [][]any{
				segmentRow("framing", "Framing", "Structure", 1, 5, 8),
				segmentRow("drywall", "Drywall", "Finishes", 5, 2, 3),
			}}, nil
		}}
		items, err := NewSegmentPostgresRepository(db).List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "framing", items[0].ID)
		assert.Equal(t, 3.0, items[1].BenchmarkHigh)
		assert.Contains(t, db.calls[0].sql, "ORDER BY phase_order, name")
	})

	t.Run("get missing is zero value", func(t *testing.T) {
		db := &fakePgx{row: func(string, []any) pgx.Row { return fakeRow{err: pgx.ErrNoRows} }}
		s, err := NewSegmentPostgresRepository(db).GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, s.ID)
	})

	t.Run("get", func(t *testing.T) {
		db := &fakePgx{row: func(_ string, args []any) pgx.Row {
			return fakeRow{vals: segmentRow(args[0].(string), "Drywall", "Finishes", 5, 2, 3)}
		}}
		s, err := NewSegmentPostgresRepository(db).GetByID(ctx, "drywall")
		require.NoError(t, err)
		assert.Equal(t, "Drywall", s.Name)
		assert.Equal(t, 5, s.PhaseOrder)
	})
}

func offeringRow(id, email, segment string, countries, regions []string) []any {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []any{id, email, "Acme", "", segment, countries, regions, "", "2 weeks", "", true, at, at}
}

func TestVendorOfferingPostgresRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("match query filters on country", func(t *testing.T) {
		db := &fakePgx{query: func(string, []any) (pgx.Rows, error) {
			return &fakeRows{rows: [][]any{offeringRow("vs-1", "acme@vendor.test", "drywall", []string{"CA"}, []string{"ON"})}}, nil
		}}
		items, err := NewVendorOfferingPostgresRepository(db).ListActiveBySegmentAndCountry(ctx, "drywall", "CA")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, []string{"ON"}, items[0].RegionsServed)
		assert.Contains(t, db.calls[0].sql, "$2 = ANY(countries_served)")
		assert.Equal(t, []any{"drywall", "CA"}, db.calls[0].args)
	})

	t.Run("rows error surfaces", func(t *testing.T) {
		db := &fakePgx{query: func(string, []any) (pgx.Rows, error) {
			return &fakeRows{err: errBoom}, nil
		}}
		_, err := NewVendorOfferingPostgresRepository(db).ListByUserEmail(ctx, "acme@vendor.test")
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("create duplicate", func(t *testing.T) {
		db := &fakePgx{exec: func(string, []any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505", ConstraintName: "vendor_services_user_email_segment_key"}
		}}
		res, err := NewVendorOfferingPostgresRepository(db).Create(ctx, entities.VendorOffering{ID: "vs-2"})
		require.NoError(t, err)
		assert.Equal(t, entities.InsertAlreadyExists, res)
	})

	t.Run("create", func(t *testing.T) {
		db := &fakePgx{exec: func(string, []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		}}
		res, err := NewVendorOfferingPostgresRepository(db).Create(ctx, entities.VendorOffering{ID: "vs-2"})
		require.NoError(t, err)
		assert.Equal(t, entities.InsertCreated, res)
	})

	t.Run("other exec errors pass through", func(t *testing.T) {
		db := &fakePgx{exec: func(string, []any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, &pgconn.PgError{Code: "23502"}
		}}
		_, err := NewVendorOfferingPostgresRepository(db).Create(ctx, entities.VendorOffering{ID: "vs-2"})
		assert.Error(t, err)
	})

	t.Run("update not owned", func(t *testing.T) {
		db := &fakePgx{row: func(string, []any) pgx.Row { return fakeRow{err: pgx.ErrNoRows} }}
		o, err := NewVendorOfferingPostgresRepository(db).Update(ctx, entities.VendorOffering{ID: "vs-1", UserEmail: "other@vendor.test"})
		require.NoError(t, err)
		assert.Empty(t, o.ID)
	})

	t.Run("delete", func(t *testing.T) {
		affected := "DELETE 1"
		db := &fakePgx{exec: func(string, []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag(affected), nil
		}}
		repo := NewVendorOfferingPostgresRepository(db)

		ok, err := repo.Delete(ctx, "vs-1", "acme@vendor.test")
		require.NoError(t, err)
		assert.True(t, ok)

		affected = "DELETE 0"
		ok, err = repo.Delete(ctx, "vs-1", "acme@vendor.test")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProjectAccessPostgresRepository_ResolveAccess(t *testing.T) {
	ctx := context.Background()
	project := []any{"p-1", "owner-1", "Basement", "1 Main St", "Toronto", "ON", "CA", "M5V"}

	newDB := func(share fakeRow) *fakePgx {
		return &fakePgx{row: func(sql string, _ []any) pgx.Row {
			if strings.Contains(sql, "project_shares") {
				return share
			}
			return fakeRow{vals: project}
		}}
	}

	t.Run("owner", func(t *testing.T) {
		db := newDB(fakeRow{err: pgx.ErrNoRows})
		acc, err := NewProjectAccessPostgresRepository(db).ResolveAccess(ctx, "owner-1", "p-1")
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectRoleOwner, acc.Role)
		assert.Equal(t, "Toronto", acc.Project.Address.City)
		assert.Len(t, db.calls, 1)
	})

	t.Run("shared with edit", func(t *testing.T) {
		acc, err := NewProjectAccessPostgresRepository(newDB(fakeRow{vals: []any{" Edit "}})).ResolveAccess(ctx, "user-2", "p-1")
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectRoleEdit, acc.Role)
	})

	t.Run("shared with anything else is view", func(t *testing.T) {
		acc, err := NewProjectAccessPostgresRepository(newDB(fakeRow{vals: []any{"comment"}})).ResolveAccess(ctx, "user-2", "p-1")
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectRoleView, acc.Role)
	})

	t.Run("not shared", func(t *testing.T) {
		_, err := NewProjectAccessPostgresRepository(newDB(fakeRow{err: pgx.ErrNoRows})).ResolveAccess(ctx, "user-3", "p-1")
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("missing project", func(t *testing.T) {
		db := &fakePgx{row: func(string, []any) pgx.Row { return fakeRow{err: pgx.ErrNoRows} }}
		_, err := NewProjectAccessPostgresRepository(db).ResolveAccess(ctx, "owner-1", "p-9")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		db := &fakePgx{row: func(string, []any) pgx.Row { return fakeRow{err: errBoom} }}
		_, err := NewProjectAccessPostgresRepository(db).ResolveAccess(ctx, "owner-1", "p-1")
		assert.ErrorIs(t, err, errs.ErrPersistence)
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestProjectAccessPostgresRepository_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("customer falls back to company name", func(t *testing.T) {
		db := &fakePgx{row: func(string, []any) pgx.Row {
			return fakeRow{vals: []any{"owner@home.test", "  ", "Home Co"}}
		}}
		c, err := NewProjectAccessPostgresRepository(db).GetCustomer(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, entities.Customer{UserID: "owner-1", Email: "owner@home.test", Name: "Home Co"}, c)
	})

	t.Run("customer missing", func(t *testing.T) {
		db := &fakePgx{row: func(string, []any) pgx.Row { return fakeRow{err: pgx.ErrNoRows} }}
		_, err := NewProjectAccessPostgresRepository(db).GetCustomer(ctx, "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("project owner", func(t *testing.T) {
		db := &fakePgx{row: func(string, []any) pgx.Row { return fakeRow{vals: []any{"owner-1"}} }}
		owner, err := NewProjectAccessPostgresRepository(db).GetProjectOwner(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, "owner-1", owner)
	})
}
