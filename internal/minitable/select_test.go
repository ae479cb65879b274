package minitable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTable_Select(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		pagerMock = new(MockPager)
		rows      = randomRows(5)
		aRootPage = newRootLeafPage(rows...)
		aTable    = NewTable("foo", pagerMock, testLogger)
	)
	pagerMock.On("GetPage", mock.Anything, uint32(0)).Return(aRootPage, nil)

	aResult, err := aTable.Select(ctx)
	require.NoError(t, err)

	for i := 0; i < len(rows); i++ {
		selectRow, err := aResult.Rows(ctx)
		require.NoError(t, err)
		assert.Equal(t, rows[i], selectRow)
	}

	_, err = aResult.Rows(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMoreRows)
}

func TestTable_Select_EmptyTable(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		pagerMock = new(MockPager)
		aRootPage = newRootLeafPage()
		aTable    = NewTable("foo", pagerMock, testLogger)
	)
	pagerMock.On("GetPage", mock.Anything, uint32(0)).Return(aRootPage, nil)

	aResult, err := aTable.Select(ctx)
	require.NoError(t, err)

	_, err = aResult.Rows(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMoreRows)
}

func TestTable_Select_StoredOrder(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		pagerMock = new(MockPager)
		aRootPage = newRootLeafPage()
		aTable    = NewTable("foo", pagerMock, testLogger)
	)
	pagerMock.On("GetPage", mock.Anything, uint32(0)).Return(aRootPage, nil)

	for _, id := range []uint32{3, 1, 2} {
		aRow, err := NewRow(id, "user", "user@example.com")
		require.NoError(t, err)
		require.NoError(t, aTable.Insert(ctx, aRow))
	}

	aResult, err := aTable.Select(ctx)
	require.NoError(t, err)

	var ids []uint32
	aRow, err := aResult.Rows(ctx)
	for ; err == nil; aRow, err = aResult.Rows(ctx) {
		ids = append(ids, aRow.ID)
	}
	require.ErrorIs(t, err, ErrNoMoreRows)
	assert.Equal(t, []uint32{3, 1, 2}, ids)
}
