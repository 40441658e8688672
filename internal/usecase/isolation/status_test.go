package isolation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bmc-toolkit/hwisolation/internal/entity"
	"github.com/bmc-toolkit/hwisolation/internal/mocks"
	"github.com/bmc-toolkit/hwisolation/internal/usecase/isolation"
)

const (
	cpuPath   = entity.ObjectPath("/xyz/openbmc_project/inventory/system/chassis/motherboard/cpu0")
	eventPath = entity.ObjectPath("/xyz/openbmc_project/hardware_isolation/events/hw_isolation_status/1")

	loggingService = "xyz.openbmc_project.HardwareIsolation"
)

func expectEventAssociation(client *mocks.MockObjectClient, value any, err error) {
	client.EXPECT().
		GetProperty(gomock.Any(), isolation.MapperService, cpuPath.Append(isolation.EventLogSegment),
			isolation.AssociationInterface, isolation.EndpointsProperty).
		Return(value, err)
}

func expectEventProvider(client *mocks.MockObjectClient) {
	client.EXPECT().
		GetObject(gomock.Any(), eventPath, []string{isolation.LoggingEventInterface}).
		Return(map[string][]string{loggingService: {isolation.LoggingEventInterface}}, nil)
}

func eventProperties(severity string) map[string]any {
	return map[string]any{
		"Timestamp": uint64(1696500000),
		"Message":   "CEC Hardware - Spare",
		"Severity":  severity,
		"Associations": [][]any{
			{isolation.ErrorLogAssociation, "isolated_hw_entry", "/xyz/openbmc_project/logging/entry/5"},
		},
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mock      func(client *mocks.MockObjectClient)
		condition *entity.StatusCondition
		hasError  bool
	}{
		{
			name: "critical fault record",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, []string{string(eventPath)}, nil)
				expectEventProvider(client)
				client.EXPECT().
					GetAllProperties(gomock.Any(), loggingService, eventPath, isolation.LoggingEventInterface).
					Return(eventProperties("xyz.openbmc_project.Logging.Event.SeverityLevel.Critical"), nil)
			},
			condition: &entity.StatusCondition{
				Timestamp:    time.Unix(1696500000, 0).UTC(),
				Severity:     entity.SeverityCritical,
				Message:      "CEC Hardware - Spare",
				MessageID:    "OpenBMC.0.2.HardwareIsolationReason",
				MessageArgs:  []string{"CEC Hardware - Spare"},
				LogEntryPath: "/xyz/openbmc_project/logging/entry/5",
			},
		},
		{
			name: "unknown severity is reported as a warning",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, []string{string(eventPath)}, nil)
				expectEventProvider(client)
				client.EXPECT().
					GetAllProperties(gomock.Any(), loggingService, eventPath, isolation.LoggingEventInterface).
					Return(eventProperties("xyz.openbmc_project.Logging.Event.SeverityLevel.Unknown"), nil)
			},
			condition: &entity.StatusCondition{
				Timestamp:    time.Unix(1696500000, 0).UTC(),
				Severity:     entity.SeverityWarning,
				Message:      "CEC Hardware - Spare",
				MessageID:    "OpenBMC.0.2.HardwareIsolationReason",
				MessageArgs:  []string{"CEC Hardware - Spare"},
				LogEntryPath: "/xyz/openbmc_project/logging/entry/5",
			},
		},
		{
			name: "no event association means no condition",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, nil,
					&entity.RemoteError{Name: "org.freedesktop.DBus.Error.UnknownObject"})
			},
		},
		{
			name: "endpoints outside the status namespace are ignored",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, []string{
					"/xyz/openbmc_project/logging/entry/1",
					"/xyz/openbmc_project/logging/entry/2",
				}, nil)
			},
		},
		{
			name: "latest of several status events wins",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, []string{
					"/xyz/openbmc_project/hardware_isolation/events/hw_isolation_status/0",
					string(eventPath),
				}, nil)
				expectEventProvider(client)
				client.EXPECT().
					GetAllProperties(gomock.Any(), loggingService, eventPath, isolation.LoggingEventInterface).
					Return(eventProperties("xyz.openbmc_project.Logging.Event.SeverityLevel.Warning"), nil)
			},
			condition: &entity.StatusCondition{
				Timestamp:    time.Unix(1696500000, 0).UTC(),
				Severity:     entity.SeverityWarning,
				Message:      "CEC Hardware - Spare",
				MessageID:    "OpenBMC.0.2.HardwareIsolationReason",
				MessageArgs:  []string{"CEC Hardware - Spare"},
				LogEntryPath: "/xyz/openbmc_project/logging/entry/5",
			},
		},
		{
			name: "association lookup fails",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, nil, errTest)
			},
			hasError: true,
		},
		{
			name: "unsupported severity value aborts the aggregation",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, []string{string(eventPath)}, nil)
				expectEventProvider(client)
				client.EXPECT().
					GetAllProperties(gomock.Any(), loggingService, eventPath, isolation.LoggingEventInterface).
					Return(eventProperties("xyz.openbmc_project.Logging.Event.SeverityLevel.Debug"), nil)
			},
			hasError: true,
		},
		{
			name: "malformed timestamp aborts the aggregation",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, []string{string(eventPath)}, nil)
				expectEventProvider(client)
				client.EXPECT().
					GetAllProperties(gomock.Any(), loggingService, eventPath, isolation.LoggingEventInterface).
					Return(map[string]any{"Timestamp": "not-a-number"}, nil)
			},
			hasError: true,
		},
		{
			name: "event object hosted by no service",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, []string{string(eventPath)}, nil)
				client.EXPECT().
					GetObject(gomock.Any(), eventPath, []string{isolation.LoggingEventInterface}).
					Return(map[string][]string{}, nil)
			},
			hasError: true,
		},
		{
			name: "reading event properties fails",
			mock: func(client *mocks.MockObjectClient) {
				expectEventAssociation(client, []string{string(eventPath)}, nil)
				expectEventProvider(client)
				client.EXPECT().
					GetAllProperties(gomock.Any(), loggingService, eventPath, isolation.LoggingEventInterface).
					Return(nil, errTest)
			},
			hasError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			useCase, client := initIsolationTest(t)
			tc.mock(client)

			condition, failure := useCase.Aggregate(context.Background(), cpuPath)

			if tc.hasError {
				require.NotNil(t, failure)
				assert.Equal(t, entity.OutcomeInternalError, failure.Kind)
				assert.Nil(t, condition)

				return
			}

			require.Nil(t, failure)
			assert.Equal(t, tc.condition, condition)
		})
	}
}

// A resource whose association never materializes keeps reporting "no fault"
// on every aggregation.
func TestAggregateIdempotentWithoutFault(t *testing.T) {
	t.Parallel()

	useCase, client := initIsolationTest(t)

	expectEventAssociation(client, nil, &entity.RemoteError{Name: "org.freedesktop.DBus.Error.UnknownObject"})
	expectEventAssociation(client, nil, &entity.RemoteError{Name: "org.freedesktop.DBus.Error.UnknownObject"})

	for i := 0; i < 2; i++ {
		condition, failure := useCase.Aggregate(context.Background(), cpuPath)

		require.Nil(t, failure)
		assert.Nil(t, condition)
	}
}

func TestGetIsolationStatus(t *testing.T) {
	t.Parallel()

	interfaces := []string{"xyz.openbmc_project.Inventory.Item.Cpu"}

	tests := []struct {
		name         string
		mock         func(client *mocks.MockObjectClient)
		kind         entity.OutcomeKind
		hasCondition bool
	}{
		{
			name: "healthy resource",
			mock: func(client *mocks.MockObjectClient) {
				client.EXPECT().
					GetSubTreePaths(gomock.Any(), isolation.InventoryRoot, 0,
						[]string{"xyz.openbmc_project.Inventory.Item.Cpu", isolation.EnableInterface}).
					Return([]entity.ObjectPath{cpuPath}, nil)
				expectEventAssociation(client, nil,
					&entity.RemoteError{Name: "org.freedesktop.DBus.Error.UnknownObject"})
			},
			kind: entity.OutcomeSuccess,
		},
		{
			name: "isolated resource carries a condition",
			mock: func(client *mocks.MockObjectClient) {
				client.EXPECT().
					GetSubTreePaths(gomock.Any(), isolation.InventoryRoot, 0,
						[]string{"xyz.openbmc_project.Inventory.Item.Cpu", isolation.EnableInterface}).
					Return([]entity.ObjectPath{cpuPath}, nil)
				expectEventAssociation(client, []string{string(eventPath)}, nil)
				expectEventProvider(client)
				client.EXPECT().
					GetAllProperties(gomock.Any(), loggingService, eventPath, isolation.LoggingEventInterface).
					Return(eventProperties("xyz.openbmc_project.Logging.Event.SeverityLevel.Critical"), nil)
			},
			kind:         entity.OutcomeSuccess,
			hasCondition: true,
		},
		{
			name: "unknown resource",
			mock: func(client *mocks.MockObjectClient) {
				client.EXPECT().
					GetSubTreePaths(gomock.Any(), isolation.InventoryRoot, 0,
						[]string{"xyz.openbmc_project.Inventory.Item.Cpu", isolation.EnableInterface}).
					Return(nil, nil)
			},
			kind: entity.OutcomeResourceNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			useCase, client := initIsolationTest(t)
			tc.mock(client)

			condition, outcome := useCase.GetIsolationStatus(context.Background(), "Processor", "cpu0", interfaces)

			assert.Equal(t, tc.kind, outcome.Kind)

			if tc.hasCondition {
				require.NotNil(t, condition)
				assert.Equal(t, entity.SeverityCritical, condition.Severity)
			} else {
				assert.Nil(t, condition)
			}
		})
	}
}
