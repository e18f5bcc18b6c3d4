package reconcile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyline/planning-api/internal/domain"
)

func TestSession_Load(t *testing.T) {
	t.Run("failure path populates demo data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		notifier := &recordingNotifier{}
		sess := NewSession(NewClient(srv.URL, notifier), notifier)

		require.NoError(t, sess.Load(context.Background()))

		assert.True(t, sess.Store().Fallback())
		assert.Equal(t, len(DemoSkus()), sess.Store().Len())
		assert.Equal(t, "west", sess.Store().ActiveWarehouseID())
		assert.False(t, sess.Loading(), "loading flag must reset on every path")
	})

	t.Run("refresh replaces demo contents with live data", func(t *testing.T) {
		live := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !live {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			switch r.URL.Path {
			case "/skus":
				w.Write([]byte(`[{"id":7,"sku":"LIVE1","name":"Live Widget","category":"Tools","warehouses":["hub"]}]`))
			case "/warehouses":
				w.Write([]byte(`[{"id":"hub","code":"Hub","name":"Main Hub"}]`))
			}
		}))
		defer srv.Close()

		sess := NewSession(NewClient(srv.URL, nil), nil)
		require.NoError(t, sess.Load(context.Background()))
		require.True(t, sess.Store().Fallback())

		live = true
		require.NoError(t, sess.Load(context.Background()))

		assert.False(t, sess.Store().Fallback())
		require.Equal(t, 1, sess.Store().Len())
		assert.Equal(t, "hub", sess.Store().ActiveWarehouseID())
	})
}

func TestSession_Save(t *testing.T) {
	t.Run("failed save leaves the store untouched", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		notifier := &recordingNotifier{}
		sess := NewSession(NewClient(srv.URL, notifier), notifier)
		sess.Store().Replace(
			[]domain.Sku{{ID: 1, SKU: "A1"}, {ID: 2, SKU: "B2"}},
			[]domain.Warehouse{{ID: "north"}},
			false,
		)
		sess.Store().SetAssignment(1, "north", true)

		before := sess.Store().Assignments()

		err := sess.Save(context.Background())
		require.Error(t, err)

		after := sess.Store().Assignments()
		require.Len(t, after, len(before))
		for i := range before {
			assert.True(t, before[i].Warehouses.Equal(after[i].Warehouses))
		}
		assert.False(t, sess.Saving(), "saving flag must reset on failure")
		assert.Equal(t, []string{NoticeError}, notifier.kinds())
	})

	t.Run("fallback save succeeds without a backend", func(t *testing.T) {
		notifier := &recordingNotifier{}
		sess := NewSession(NewClient("http://127.0.0.1:1", notifier), notifier)
		sess.Store().Replace(DemoSkus(), DemoWarehouses(), true)
		notifier.notices = nil

		require.NoError(t, sess.Save(context.Background()))

		assert.Equal(t, []string{NoticeSuccess}, notifier.kinds())
		assert.Contains(t, notifier.notices[0].message, "Demo")
		assert.False(t, sess.Saving())
	})

	t.Run("live save posts the store snapshot", func(t *testing.T) {
		saved := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			saved++
		}))
		defer srv.Close()

		notifier := &recordingNotifier{}
		sess := NewSession(NewClient(srv.URL, notifier), notifier)
		sess.Store().Replace(
			[]domain.Sku{{ID: 1, SKU: "A1"}},
			[]domain.Warehouse{{ID: "north"}},
			false,
		)

		require.NoError(t, sess.Save(context.Background()))

		assert.Equal(t, 1, saved)
		assert.Equal(t, []string{NoticeSuccess}, notifier.kinds())
	})
}

func TestSession_Reset(t *testing.T) {
	notifier := &recordingNotifier{}
	sess := NewSession(NewClient("http://127.0.0.1:1", notifier), notifier)
	sess.Store().Replace(DemoSkus(), DemoWarehouses(), true)
	sess.Store().SetAllForWarehouse("west", true, sess.Store().Skus())
	notifier.notices = nil

	sess.Reset()

	assert.Equal(t, len(DemoSkus()), sess.Store().Len())
	for _, sku := range sess.Store().Skus() {
		assert.Zero(t, sku.Warehouses.Len())
	}
	assert.Equal(t, []string{NoticeInfo}, notifier.kinds())
}

func TestSession_Project(t *testing.T) {
	sess := NewSession(NewClient("http://127.0.0.1:1", nil), nil)
	sess.Store().Replace(DemoSkus(), DemoWarehouses(), true)
	sess.Store().SetSearchTerm("clothing")

	p := sess.Project()

	require.Len(t, p.Skus, 2)
	assert.False(t, p.AllSelected)

	sess.Store().SetAllForWarehouse("west", true, p.Skus)

	assert.True(t, sess.Project().AllSelected)
	assert.False(t, sess.Store().Skus()[0].Warehouses.Has("west"), "unfiltered SKU must stay untouched")
}
