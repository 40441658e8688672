package isolation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bmc-toolkit/hwisolation/internal/entity"
	"github.com/bmc-toolkit/hwisolation/internal/mocks"
	"github.com/bmc-toolkit/hwisolation/internal/registry"
	"github.com/bmc-toolkit/hwisolation/internal/usecase/isolation"
	"github.com/bmc-toolkit/hwisolation/pkg/logger"
)

var errTest = errors.New("isolation test error")

var memoryInterfaces = []string{"xyz.openbmc_project.Inventory.Item.Dimm"}

func initIsolationTest(t *testing.T) (*isolation.UseCase, *mocks.MockObjectClient) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	defer mockCtl.Finish()

	client := mocks.NewMockObjectClient(mockCtl)
	log := logger.New("error")
	useCase := isolation.New(client, registry.GetManager(), log)

	return useCase, client
}

func expectResolve(client *mocks.MockObjectClient, paths []entity.ObjectPath, err error) {
	client.EXPECT().
		GetSubTreePaths(gomock.Any(), isolation.InventoryRoot, 0,
			[]string{"xyz.openbmc_project.Inventory.Item.Dimm", isolation.EnableInterface}).
		Return(paths, err)
}

func expectProvider(client *mocks.MockObjectClient, providers map[string][]string, err error) {
	client.EXPECT().
		GetObject(gomock.Any(), isolation.IsolationRoot, []string{isolation.IsolationCreateInterface}).
		Return(providers, err)
}

func TestProcessIsolationRequestIsolate(t *testing.T) {
	t.Parallel()

	dimmPath := entity.ObjectPath("/xyz/openbmc_project/inventory/system/chassis/motherboard/dimm0")
	provider := map[string][]string{"com.example.HwIsolation": {isolation.IsolationCreateInterface}}

	tests := []struct {
		name    string
		mock    func(client *mocks.MockObjectClient)
		kind    entity.OutcomeKind
		msgID   string
		message string
		args    []string
	}{
		{
			name: "success",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				client.EXPECT().
					Call(gomock.Any(), "com.example.HwIsolation", isolation.IsolationRoot,
						isolation.IsolationCreateInterface, isolation.IsolationCreateMethod,
						dimmPath, isolation.IsolationModeManual).
					Return(nil)
			},
			kind:    entity.OutcomeSuccess,
			msgID:   "Base.1.13.0.Created",
			message: "The resource has been created successfully",
		},
		{
			name: "resource missing from the inventory",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{
					"/xyz/openbmc_project/inventory/system/chassis/motherboard/dimm1",
				}, nil)
			},
			kind:    entity.OutcomeResourceNotFound,
			msgID:   "Base.1.13.0.ResourceNotFound",
			message: "The requested resource of type Memory named 'dimm0' was not found.",
			args:    []string{"Memory", "dimm0"},
		},
		{
			name: "directory lookup fails",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, nil, errTest)
			},
			kind:  entity.OutcomeInternalError,
			msgID: "Base.1.13.0.InternalError",
		},
		{
			name: "no isolation provider",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, map[string][]string{}, nil)
			},
			kind:  entity.OutcomeInternalError,
			msgID: "Base.1.13.0.InternalError",
		},
		{
			name: "more than one isolation provider",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, map[string][]string{
					"com.example.HwIsolation":  {isolation.IsolationCreateInterface},
					"com.example.HwIsolation2": {isolation.IsolationCreateInterface},
				}, nil)
			},
			kind:  entity.OutcomeInternalError,
			msgID: "Base.1.13.0.InternalError",
		},
		{
			name: "already isolated",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				client.EXPECT().
					Call(gomock.Any(), "com.example.HwIsolation", isolation.IsolationRoot,
						isolation.IsolationCreateInterface, isolation.IsolationCreateMethod,
						dimmPath, isolation.IsolationModeManual).
					Return(&entity.RemoteError{Name: "xyz.openbmc_project.HardwareIsolation.Error.IsolatedAlready"})
			},
			kind:    entity.OutcomeAlreadyExists,
			msgID:   "Base.1.13.0.ResourceAlreadyExists",
			message: "The requested resource of type Memory with the property Id with the value 'dimm0' already exists.",
			args:    []string{"Memory", "Id", "dimm0"},
		},
		{
			name: "isolation capability rejects the argument",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				client.EXPECT().
					Call(gomock.Any(), "com.example.HwIsolation", isolation.IsolationRoot,
						isolation.IsolationCreateInterface, isolation.IsolationCreateMethod,
						dimmPath, isolation.IsolationModeManual).
					Return(&entity.RemoteError{Name: "xyz.openbmc_project.Common.Error.InvalidArgument"})
			},
			kind:  entity.OutcomeValidationError,
			msgID: "Base.1.13.0.PropertyValueIncorrect",
			args:  []string{"@odata.id", "false"},
		},
		{
			name: "isolation capability is unavailable",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				client.EXPECT().
					Call(gomock.Any(), "com.example.HwIsolation", isolation.IsolationRoot,
						isolation.IsolationCreateInterface, isolation.IsolationCreateMethod,
						dimmPath, isolation.IsolationModeManual).
					Return(&entity.RemoteError{Name: "xyz.openbmc_project.Common.Error.Unavailable"})
			},
			kind:  entity.OutcomeResourceBusy,
			msgID: "Base.1.13.0.ResourceInStandby",
		},
		{
			name: "entry limit reached",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				client.EXPECT().
					Call(gomock.Any(), "com.example.HwIsolation", isolation.IsolationRoot,
						isolation.IsolationCreateInterface, isolation.IsolationCreateMethod,
						dimmPath, isolation.IsolationModeManual).
					Return(&entity.RemoteError{Name: "xyz.openbmc_project.Common.Error.TooManyResources"})
			},
			kind:  entity.OutcomeResourceExhausted,
			msgID: "Base.1.13.0.CreateLimitReachedForResource",
		},
		{
			name: "remote error without a decodable payload",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				client.EXPECT().
					Call(gomock.Any(), "com.example.HwIsolation", isolation.IsolationRoot,
						isolation.IsolationCreateInterface, isolation.IsolationCreateMethod,
						dimmPath, isolation.IsolationModeManual).
					Return(errTest)
			},
			kind:  entity.OutcomeInternalError,
			msgID: "Base.1.13.0.InternalError",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			useCase, client := initIsolationTest(t)
			tc.mock(client)

			outcome := useCase.ProcessIsolationRequest(context.Background(), "Memory", "dimm0", false, memoryInterfaces)

			assert.Equal(t, tc.kind, outcome.Kind)
			assert.Equal(t, tc.msgID, outcome.MessageID)

			if tc.message != "" {
				assert.Equal(t, tc.message, outcome.Message)
			}

			if tc.args != nil {
				assert.Equal(t, tc.args, outcome.Args)
			}
		})
	}
}

func TestProcessIsolationRequestDeisolate(t *testing.T) {
	t.Parallel()

	dimmPath := entity.ObjectPath("/xyz/openbmc_project/inventory/system/chassis/motherboard/dimm0")
	entryPath := entity.ObjectPath("/xyz/openbmc_project/hardware_isolation/entry/3")
	provider := map[string][]string{"com.example.HwIsolation": {isolation.IsolationCreateInterface}}

	expectEndpoints := func(client *mocks.MockObjectClient, value any, err error) {
		client.EXPECT().
			GetProperty(gomock.Any(), isolation.MapperService,
				dimmPath.Append(isolation.IsolationEntrySegment),
				isolation.AssociationInterface, isolation.EndpointsProperty).
			Return(value, err)
	}

	tests := []struct {
		name  string
		mock  func(client *mocks.MockObjectClient)
		kind  entity.OutcomeKind
		msgID string
	}{
		{
			name: "success",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				expectEndpoints(client, []string{string(entryPath)}, nil)
				client.EXPECT().
					Call(gomock.Any(), "com.example.HwIsolation", entryPath,
						isolation.DeleteInterface, isolation.DeleteMethod).
					Return(nil)
			},
			kind:  entity.OutcomeSuccess,
			msgID: "Base.1.13.0.Success",
		},
		{
			name: "latest of several entries is deleted",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				expectEndpoints(client, []string{
					"/xyz/openbmc_project/hardware_isolation/entry/1",
					"/xyz/openbmc_project/hardware_isolation/entry/2",
					string(entryPath),
				}, nil)
				client.EXPECT().
					Call(gomock.Any(), "com.example.HwIsolation", entryPath,
						isolation.DeleteInterface, isolation.DeleteMethod).
					Return(nil)
			},
			kind:  entity.OutcomeSuccess,
			msgID: "Base.1.13.0.Success",
		},
		{
			name: "no tracked isolation entry is an internal error",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				expectEndpoints(client, []string{}, nil)
			},
			kind:  entity.OutcomeInternalError,
			msgID: "Base.1.13.0.InternalError",
		},
		{
			name: "association lookup fails",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				expectEndpoints(client, nil, errTest)
			},
			kind:  entity.OutcomeInternalError,
			msgID: "Base.1.13.0.InternalError",
		},
		{
			name: "entry is not writable",
			mock: func(client *mocks.MockObjectClient) {
				expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
				expectProvider(client, provider, nil)
				expectEndpoints(client, []string{string(entryPath)}, nil)
				client.EXPECT().
					Call(gomock.Any(), "com.example.HwIsolation", entryPath,
						isolation.DeleteInterface, isolation.DeleteMethod).
					Return(&entity.RemoteError{Name: "xyz.openbmc_project.Common.Error.NotAllowed"})
			},
			kind:  entity.OutcomePermissionDenied,
			msgID: "Base.1.13.0.PropertyNotWritable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			useCase, client := initIsolationTest(t)
			tc.mock(client)

			outcome := useCase.ProcessIsolationRequest(context.Background(), "Memory", "dimm0", true, memoryInterfaces)

			assert.Equal(t, tc.kind, outcome.Kind)
			assert.Equal(t, tc.msgID, outcome.MessageID)
		})
	}
}

func TestDeisolatePropertyNotWritableNamesEntry(t *testing.T) {
	t.Parallel()

	dimmPath := entity.ObjectPath("/xyz/openbmc_project/inventory/system/chassis/motherboard/dimm0")
	entryPath := entity.ObjectPath("/xyz/openbmc_project/hardware_isolation/entry/1")

	useCase, client := initIsolationTest(t)

	expectResolve(client, []entity.ObjectPath{dimmPath}, nil)
	expectProvider(client, map[string][]string{"com.example.HwIsolation": {isolation.IsolationCreateInterface}}, nil)
	client.EXPECT().
		GetProperty(gomock.Any(), isolation.MapperService,
			dimmPath.Append(isolation.IsolationEntrySegment),
			isolation.AssociationInterface, isolation.EndpointsProperty).
		Return([]string{string(entryPath)}, nil)
	client.EXPECT().
		Call(gomock.Any(), "com.example.HwIsolation", entryPath,
			isolation.DeleteInterface, isolation.DeleteMethod).
		Return(&entity.RemoteError{Name: "xyz.openbmc_project.Common.Error.NotAllowed"})

	outcome := useCase.ProcessIsolationRequest(context.Background(), "Memory", "dimm0", true, memoryInterfaces)

	require.Equal(t, entity.OutcomePermissionDenied, outcome.Kind)
	assert.Equal(t, []string{"Entry"}, outcome.Args)
	assert.Equal(t, "The property Entry is a read only property and cannot be assigned a value.", outcome.Message)
}
