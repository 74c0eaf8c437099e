package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smart-life-guard/internal/event"
	"smart-life-guard/internal/fixture"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/store"
	"smart-life-guard/pkg/apierror"
)

func newWorkOrderService(t *testing.T) *WorkOrderService {
	t.Helper()

	orders := store.New(func(o model.WorkOrder) string { return o.ID }, fixture.WorkOrders())
	devices := store.New(func(d model.Device) string { return d.ID }, fixture.Devices())
	s := NewWorkOrderService(orders, devices, event.NewBus())
	s.now = func() time.Time { return time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC) }
	return s
}

func TestWorkOrderServiceList(t *testing.T) {
	t.Parallel()

	t.Run("priority label filter", func(t *testing.T) {
		s := newWorkOrderService(t)
		got := s.List(WorkOrderFilter{PriorityLabel: "高"})
		require.Len(t, got, 2)
	})

	t.Run("status label filter", func(t *testing.T) {
		s := newWorkOrderService(t)
		got := s.List(WorkOrderFilter{StatusLabel: "待派发"})
		require.Len(t, got, 1)
		require.Equal(t, "WO-2024-002", got[0].ID)
	})

	t.Run("category label translates to the stored tag", func(t *testing.T) {
		s := newWorkOrderService(t)
		got := s.List(WorkOrderFilter{CategoryLabel: "硬件故障"})
		require.Len(t, got, 1)
		require.Equal(t, "WO-2024-001", got[0].ID)
	})

	t.Run("text search on title", func(t *testing.T) {
		s := newWorkOrderService(t)
		got := s.List(WorkOrderFilter{Search: "指纹"})
		require.Len(t, got, 1)
	})
}

func TestWorkOrderServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("requires title and description", func(t *testing.T) {
		s := newWorkOrderService(t)
		_, err := s.Create(model.CreateWorkOrderRequest{Title: "门禁失灵"})

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Contains(t, apiErr.Details, "description")
	})

	t.Run("denormalizes device name and location", func(t *testing.T) {
		s := newWorkOrderService(t)
		order, err := s.Create(model.CreateWorkOrderRequest{
			Title: "门锁电量低", Description: "电池电量不足，需要更换", DeviceID: "SLG-001", Priority: "high",
		})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(order.ID, "WO-2024-"))
		require.Equal(t, model.WorkOrderPending, order.Status)
		require.Equal(t, model.PriorityHigh, order.Priority)
		require.Equal(t, "智能门锁-A栋101", order.DeviceName)
		require.Equal(t, "A栋-1层-101室", order.Location)
	})

	t.Run("unrecognized priority falls back to low", func(t *testing.T) {
		s := newWorkOrderService(t)
		order, err := s.Create(model.CreateWorkOrderRequest{
			Title: "例行巡检", Description: "季度巡检任务", Priority: "extreme",
		})
		require.NoError(t, err)
		require.Equal(t, model.PriorityLow, order.Priority)
	})
}

func TestWorkOrderServiceStats(t *testing.T) {
	t.Parallel()

	s := newWorkOrderService(t)
	stats := s.Stats()

	require.Equal(t, 4, stats.Total)
	require.Equal(t, 1, stats.Pending)
	require.Equal(t, 1, stats.InProgress)
	require.Equal(t, 1, stats.Completed)
	require.Equal(t, 1, stats.Cancelled)
}
