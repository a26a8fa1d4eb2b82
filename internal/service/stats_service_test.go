package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/models"
	"github.com/popeskul/smstask/internal/service"
	smsmocks "github.com/popeskul/smstask/internal/smsapi/mocks"
)

func allStats() *models.AllStatsResponse {
	return &models.AllStatsResponse{
		Daily:   models.PeriodStats{Total: 10, Sent: 7, Failed: 2, Pending: 1},
		Weekly:  models.PeriodStats{Total: 50, Sent: 40, Failed: 5, Pending: 5},
		Monthly: models.PeriodStats{Total: 0},
	}
}

func TestStatsService_LoadAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := smsmocks.NewMockClient(ctrl)
	svc := service.NewStatsService(client, 10, zap.NewNop())

	client.EXPECT().GetAllStats(gomock.Any()).Return(allStats(), nil)

	require.NoError(t, svc.LoadAll(context.Background()))

	view := svc.View()
	assert.Equal(t, service.PeriodDay, view.Period)
	assert.Equal(t, models.StatsData{Total: 10, Sent: 7, Failed: 2, Pending: 1}, view.Current)
	assert.Equal(t, 50, view.Weekly.Total)
	assert.Empty(t, view.ErrorMessage)
}

func TestStatsService_LoadAllFailureResetsCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := smsmocks.NewMockClient(ctrl)
	svc := service.NewStatsService(client, 10, zap.NewNop())

	gomock.InOrder(
		client.EXPECT().GetAllStats(gomock.Any()).Return(allStats(), nil),
		client.EXPECT().GetAllStats(gomock.Any()).Return(nil, errors.New("server down")),
	)

	require.NoError(t, svc.LoadAll(context.Background()))
	err := svc.LoadAll(context.Background())
	require.Error(t, err)

	view := svc.View()
	assert.Equal(t, models.StatsData{}, view.Daily)
	assert.Equal(t, models.StatsData{}, view.Weekly)
	assert.Equal(t, models.StatsData{}, view.Current)
	assert.Contains(t, view.ErrorMessage, "server down")
}

func TestStatsService_SelectPeriod(t *testing.T) {
	tests := []struct {
		name           string
		period         string
		expectReload   bool
		expectedPeriod string
		expectedTotal  int
	}{
		{name: "cached week", period: "week", expectedPeriod: service.PeriodWeek, expectedTotal: 50},
		{name: "empty month reloads", period: "month", expectReload: true, expectedPeriod: service.PeriodMonth, expectedTotal: 0},
		{name: "unknown period shows the day", period: "year", expectedPeriod: service.PeriodDay, expectedTotal: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := smsmocks.NewMockClient(ctrl)
			svc := service.NewStatsService(client, 10, zap.NewNop())

			client.EXPECT().GetAllStats(gomock.Any()).Return(allStats(), nil)
			require.NoError(t, svc.LoadAll(context.Background()))

			if tt.expectReload {
				client.EXPECT().GetAllStats(gomock.Any()).Return(allStats(), nil)
			}

			require.NoError(t, svc.SelectPeriod(context.Background(), tt.period))

			view := svc.View()
			assert.Equal(t, tt.expectedPeriod, view.Period)
			assert.Equal(t, tt.expectedTotal, view.Current.Total)
		})
	}
}

func TestStatsService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := smsmocks.NewMockClient(ctrl)
	svc := service.NewStatsService(client, 5, zap.NewNop())

	client.EXPECT().GetAllStats(gomock.Any()).Return(allStats(), nil)
	client.EXPECT().GetRecent(gomock.Any(), 5).Return([]models.RecentMessageResponse{
		{IDSms: 1, Status: "SENT"},
		{IDSms: 2, Status: "FAILED"},
		{IDSms: 3, Status: "SENT"},
		{IDSms: 4, Status: "queued"},
	}, nil)

	require.NoError(t, svc.Refresh(context.Background()))

	view := svc.View()
	require.NotNil(t, view.RecentBreakdown)
	assert.Equal(t, models.StatsData{Total: 4, Sent: 2, Failed: 1, Pending: 1}, *view.RecentBreakdown)
}

func TestStatsService_RefreshKeepsStatsWhenRecentFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := smsmocks.NewMockClient(ctrl)
	svc := service.NewStatsService(client, 5, zap.NewNop())

	client.EXPECT().GetAllStats(gomock.Any()).Return(allStats(), nil)
	client.EXPECT().GetRecent(gomock.Any(), 5).Return(nil, errors.New("timeout"))

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Nil(t, svc.View().RecentBreakdown)
	assert.Equal(t, 10, svc.View().Current.Total)
}

func TestStatsService_RefreshLoadsBreakdownWhenStatsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := smsmocks.NewMockClient(ctrl)
	svc := service.NewStatsService(client, 5, zap.NewNop())

	client.EXPECT().GetAllStats(gomock.Any()).Return(nil, errors.New("stats unavailable"))
	client.EXPECT().GetRecent(gomock.Any(), 5).Return([]models.RecentMessageResponse{
		{IDSms: 1, Status: "SENT"},
	}, nil)

	assert.Error(t, svc.Refresh(context.Background()))

	view := svc.View()
	require.NotNil(t, view.RecentBreakdown)
	assert.Equal(t, models.StatsData{Total: 1, Sent: 1}, *view.RecentBreakdown)
	assert.NotEmpty(t, view.ErrorMessage)
}

func TestStatsService_Live(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := smsmocks.NewMockClient(ctrl)
	svc := service.NewStatsService(client, 5, zap.NewNop())

	client.EXPECT().GetStats(gomock.Any(), "week").Return(&models.StatsResponse{Total: 3, Sent: 3}, nil)
	client.EXPECT().GetStats(gomock.Any(), "day").Return(nil, errors.New("boom"))

	stats, err := svc.Live(context.Background(), "week")
	require.NoError(t, err)
	assert.Equal(t, models.StatsData{Total: 3, Sent: 3}, stats)

	_, err = svc.Live(context.Background(), "")
	assert.Error(t, err)
}

func TestCalculateFromRecords(t *testing.T) {
	statut := func(v int) *int { return &v }

	stats := service.CalculateFromRecords([]models.SmsRecord{
		{IDSms: 1, Statut: statut(models.StatutSent)},
		{IDSms: 2, Statut: statut(models.StatutFailed)},
		{IDSms: 3, Statut: statut(models.StatutPending)},
		{IDSms: 4},
		{IDSms: 5, Statut: statut(models.StatutSent)},
	})

	assert.Equal(t, models.StatsData{Total: 5, Sent: 2, Failed: 1, Pending: 2}, stats)
	assert.Equal(t, models.StatsData{}, service.CalculateFromRecords(nil))
}
