package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/flychain-wallet/internal/domain"
	portmocks "github.com/bnema/flychain-wallet/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func newTestStore(t *testing.T) (*Store, *portmocks.MockKeyStore, *portmocks.MockKeyStore) {
	t.Helper()

	primary := portmocks.NewMockKeyStore(t)
	fallback := portmocks.NewMockKeyStore(t)
	return NewStore(primary, fallback), primary, fallback
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockKeyStore(t))
	assert.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockKeyStore(t), nil)
	assert.ErrorIs(t, err, errNilFallbackStore)
}

func TestLoadKeyUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().LoadKey(mock.Anything, testAddress).Return("from-pass", nil).Once()

	value, err := store.LoadKey(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestLoadKeyFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().LoadKey(mock.Anything, testAddress).Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().LoadKey(mock.Anything, testAddress).Return("from-file", nil).Once()

	value, err := store.LoadKey(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestLoadKeyReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().LoadKey(mock.Anything, testAddress).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().LoadKey(mock.Anything, testAddress).Return("", errors.New("file failed")).Once()

	_, err := store.LoadKey(context.Background(), testAddress)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary keystore")
	assert.ErrorContains(t, err, "fallback keystore")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestLoadKeyKeepsNotFoundWhenPrimaryIsUnavailable(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().LoadKey(mock.Anything, testAddress).Return("", errors.New("pass command unavailable")).Once()
	fallback.EXPECT().LoadKey(mock.Anything, testAddress).Return("", fmt.Errorf("wallet key: %w", domain.ErrKeyNotFound)).Once()

	_, err := store.LoadKey(context.Background(), testAddress)
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass command unavailable")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestLoadKeyMissingEverywhere(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().LoadKey(mock.Anything, testAddress).Return("", domain.ErrKeyNotFound).Once()
	fallback.EXPECT().LoadKey(mock.Anything, testAddress).Return("", domain.ErrKeyNotFound).Once()

	_, err := store.LoadKey(context.Background(), testAddress)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreKeyFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().StoreKey(mock.Anything, testAddress, "deadbeef").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().StoreKey(mock.Anything, testAddress, "deadbeef").Return(nil).Once()

	require.NoError(t, store.StoreKey(context.Background(), testAddress, "deadbeef"))
}

func TestStoreKeyDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().StoreKey(mock.Anything, testAddress, "deadbeef").Return(nil).Once()

	require.NoError(t, store.StoreKey(context.Background(), testAddress, "deadbeef"))
}

func TestStoreKeyDoesNotFallbackOnInvalidAddress(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().StoreKey(mock.Anything, "nope", "deadbeef").Return(domain.ErrInvalidAddress).Once()

	err := store.StoreKey(context.Background(), "nope", "deadbeef")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestDeleteKeyClearsBothBackends(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().DeleteKey(mock.Anything, testAddress).Return(nil).Once()
	fallback.EXPECT().DeleteKey(mock.Anything, testAddress).Return(nil).Once()

	require.NoError(t, store.DeleteKey(context.Background(), testAddress))
}

func TestDeleteKeyToleratesUnavailablePrimary(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().DeleteKey(mock.Anything, testAddress).Return(errors.New("pass unavailable")).Once()
	fallback.EXPECT().DeleteKey(mock.Anything, testAddress).Return(nil).Once()

	require.NoError(t, store.DeleteKey(context.Background(), testAddress))
}

func TestDeleteKeyJoinsErrorsWhenBothFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().DeleteKey(mock.Anything, testAddress).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().DeleteKey(mock.Anything, testAddress).Return(errors.New("file failed")).Once()

	err := store.DeleteKey(context.Background(), testAddress)
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestLoadKeyDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().LoadKey(mock.Anything, testAddress).Return("", context.Canceled).Once()

	_, err := store.LoadKey(context.Background(), testAddress)
	require.ErrorIs(t, err, context.Canceled)
}
