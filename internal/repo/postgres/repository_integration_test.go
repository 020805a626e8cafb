//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	pgrepo "github.com/Gunvolt24/wb_catalog/internal/repo/postgres"
	"github.com/Gunvolt24/wb_catalog/internal/testutil"
)

// startDB — контейнер Postgres с применёнными миграциями и пулом на время теста.
func startDB(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool, err := pgrepo.NewPool(ctx, pg.DSN, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return ctx, pool
}

func TestProductRepo_SaveGetExists_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)

	merchants := pgrepo.NewMerchantRepository(pool)
	products := pgrepo.NewProductRepository(pool)

	m := testutil.MakeMerchant()
	require.NoError(t, merchants.Save(ctx, &m))

	p := testutil.MakeProduct(m)
	require.NoError(t, products.Save(ctx, &p))

	got, err := products.GetBySKU(ctx, p.SKU)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, p.SKU, got.SKU)
	require.Equal(t, m.Code, got.MerchantCode)
	require.True(t, p.CreatedAt.Equal(got.CreatedAt))

	exists, err := products.ExistsSKU(ctx, p.SKU)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = products.ExistsSKU(ctx, m.Code+"_missing")
	require.NoError(t, err)
	require.False(t, exists)

	missing, err := products.GetBySKU(ctx, m.Code+"_missing")
	require.NoError(t, err)
	require.Nil(t, missing)
}

// Первичный ключ по sku — уникальность даже при гонке проверок.
func TestProductRepo_DuplicateSKU_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)

	merchants := pgrepo.NewMerchantRepository(pool)
	products := pgrepo.NewProductRepository(pool)

	m := testutil.MakeMerchant()
	require.NoError(t, merchants.Save(ctx, &m))

	p := testutil.MakeProduct(m)
	require.NoError(t, products.Save(ctx, &p))

	again := testutil.MakeProduct(m, testutil.WithSKU(p.SKU))
	require.ErrorIs(t, products.Save(ctx, &again), domain.ErrDuplicateSKU)
}

func TestProductRepo_UnknownMerchant_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)

	products := pgrepo.NewProductRepository(pool)

	ghost := testutil.MakeMerchant()
	p := testutil.MakeProduct(ghost)
	require.ErrorIs(t, products.Save(ctx, &p), domain.ErrMerchantNotFound)
}

func TestProductRepo_ListByMerchantAndLastN_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)

	merchants := pgrepo.NewMerchantRepository(pool)
	products := pgrepo.NewProductRepository(pool)

	a := testutil.MakeMerchant()
	b := testutil.MakeMerchant()
	require.NoError(t, merchants.Save(ctx, &a))
	require.NoError(t, merchants.Save(ctx, &b))

	base := time.Now().UTC().Truncate(time.Second)
	var skus []string
	for i := 0; i < 3; i++ {
		p := testutil.MakeProduct(a, testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, products.Save(ctx, &p))
		skus = append(skus, p.SKU)
	}
	other := testutil.MakeProduct(b, testutil.WithCreatedAt(base.Add(time.Hour)))
	require.NoError(t, products.Save(ctx, &other))

	page, err := products.ListByMerchant(ctx, a.Code, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, skus[2], page[0].SKU, "newest first")
	require.Equal(t, skus[1], page[1].SKU)

	page, err = products.ListByMerchant(ctx, a.Code, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, skus[0], page[0].SKU)

	empty, err := products.ListByMerchant(ctx, "NOPE", 10, 0)
	require.NoError(t, err)
	require.Empty(t, empty)

	last, err := products.LastN(ctx, 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	require.Equal(t, other.SKU, last[0].SKU)
	require.Equal(t, skus[2], last[1].SKU)
}

func TestMerchantRepo_Resolve_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := startDB(t)

	merchants := pgrepo.NewMerchantRepository(pool)

	m := testutil.MakeMerchant()
	require.NoError(t, merchants.Save(ctx, &m))

	code, err := merchants.ResolveMerchantCode(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.Code, code)

	_, err = merchants.ResolveMerchantCode(ctx, "mer-unknown")
	require.ErrorIs(t, err, domain.ErrMerchantNotFound)

	_, err = merchants.ResolveMerchantCode(ctx, "")
	require.ErrorIs(t, err, domain.ErrMerchantNotFound)
}
