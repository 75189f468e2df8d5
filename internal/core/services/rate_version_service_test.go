package services_test

import (
	"context"
	"testing"

	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
	"github.com/pingufin/fxdesk/internal/core/services"
	"github.com/pingufin/fxdesk/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateVersionRepository ---
type MockRateVersionRepository struct {
	mock.Mock
}

func (m *MockRateVersionRepository) FindRateVersionByID(ctx context.Context, versionID string) (*domain.ExchangeRateVersion, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateVersion), args.Error(1)
}

func (m *MockRateVersionRepository) FindActiveRateVersion(ctx context.Context) (*domain.ExchangeRateVersion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateVersion), args.Error(1)
}

func (m *MockRateVersionRepository) ListRateVersions(ctx context.Context) ([]domain.ExchangeRateVersion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRateVersion), args.Error(1)
}

func (m *MockRateVersionRepository) SaveRateVersion(ctx context.Context, version domain.ExchangeRateVersion) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

func (m *MockRateVersionRepository) SetActiveVersion(ctx context.Context, versionID string) error {
	args := m.Called(ctx, versionID)
	return args.Error(0)
}

// --- Test Suite ---
type RateVersionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRateVersionRepository
	service  portssvc.RateVersionSvcFacade
}

func (suite *RateVersionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateVersionRepository)
	suite.service = services.NewRateVersionService(suite.mockRepo)
}

func validCreateRequest() dto.CreateRateVersionRequest {
	return dto.CreateRateVersionRequest{
		VersionName:  "2026-Q1",
		BaseCurrency: "CHF",
		Rates: map[string]decimal.Decimal{
			"CHF": decimal.NewFromInt(1),
			"EUR": decimal.NewFromFloat(1.05),
			"USD": decimal.NewFromFloat(1.15),
		},
	}
}

// --- Test Cases ---

func (suite *RateVersionServiceTestSuite) TestCreateRateVersion_Success() {
	ctx := context.Background()
	req := validCreateRequest()

	suite.mockRepo.On("SaveRateVersion", ctx, mock.MatchedBy(func(v domain.ExchangeRateVersion) bool {
		return v.VersionName == "2026-Q1" && v.BaseCurrency == domain.CHF && !v.Active && len(v.Rates) == 3
	})).Return(nil).Once()

	version, err := suite.service.CreateRateVersion(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(version)
	suite.False(version.Active, "a freshly uploaded version must start inactive")
	suite.Equal("admin", version.UploadedBy)
	suite.NotEmpty(version.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateVersionServiceTestSuite) TestCreateRateVersion_BlankName() {
	ctx := context.Background()
	req := validCreateRequest()
	req.VersionName = "   "

	version, err := suite.service.CreateRateVersion(ctx, req, "admin")

	suite.Require().Error(err)
	suite.Nil(version)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRateVersion", mock.Anything, mock.Anything)
}

func (suite *RateVersionServiceTestSuite) TestCreateRateVersion_UnknownBaseCurrency() {
	ctx := context.Background()
	req := validCreateRequest()
	req.BaseCurrency = "XXX"

	version, err := suite.service.CreateRateVersion(ctx, req, "admin")

	suite.Require().Error(err)
	suite.Nil(version)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateVersionServiceTestSuite) TestCreateRateVersion_UnknownRateCurrency() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Rates["ZZZ"] = decimal.NewFromFloat(2.0)

	version, err := suite.service.CreateRateVersion(ctx, req, "admin")

	suite.Require().Error(err)
	suite.Nil(version)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateVersionServiceTestSuite) TestCreateRateVersion_NonPositiveRate() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Rates["EUR"] = decimal.Zero

	version, err := suite.service.CreateRateVersion(ctx, req, "admin")

	suite.Require().Error(err)
	suite.Nil(version)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateVersionServiceTestSuite) TestCreateRateVersion_BaseRateNotOne() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Rates["CHF"] = decimal.NewFromFloat(1.5)

	version, err := suite.service.CreateRateVersion(ctx, req, "admin")

	suite.Require().Error(err)
	suite.Nil(version)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateVersionServiceTestSuite) TestCreateRateVersion_BaseRateWithinTolerance() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Rates["CHF"] = decimal.NewFromFloat(1.00005)

	suite.mockRepo.On("SaveRateVersion", ctx, mock.AnythingOfType("domain.ExchangeRateVersion")).Return(nil).Once()

	version, err := suite.service.CreateRateVersion(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(version)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateVersionServiceTestSuite) TestCreateRateVersion_MissingBaseRate() {
	ctx := context.Background()
	req := validCreateRequest()
	delete(req.Rates, "CHF")

	version, err := suite.service.CreateRateVersion(ctx, req, "admin")

	suite.Require().Error(err)
	suite.Nil(version)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateVersionServiceTestSuite) TestActivateRateVersion_Success() {
	ctx := context.Background()
	versionID := "version-1"

	suite.mockRepo.On("SetActiveVersion", ctx, versionID).Return(nil).Once()

	err := suite.service.ActivateRateVersion(ctx, versionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateVersionServiceTestSuite) TestActivateRateVersion_UnknownID() {
	ctx := context.Background()
	versionID := "no-such-version"

	suite.mockRepo.On("SetActiveVersion", ctx, versionID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.ActivateRateVersion(ctx, versionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateVersionServiceTestSuite) TestGetActiveRateVersion_NoneActive() {
	ctx := context.Background()

	suite.mockRepo.On("FindActiveRateVersion", ctx).Return(nil, apperrors.ErrNotFound).Once()

	version, err := suite.service.GetActiveRateVersion(ctx)

	suite.Require().Error(err)
	suite.Nil(version)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateVersionServiceTestSuite) TestGetActiveRateVersion_Success() {
	ctx := context.Background()
	active := domain.NewExchangeRateVersion("2026-Q1", domain.CHF, map[domain.Currency]decimal.Decimal{
		domain.CHF: decimal.NewFromInt(1),
	}, "admin")
	active.Active = true

	suite.mockRepo.On("FindActiveRateVersion", ctx).Return(&active, nil).Once()

	version, err := suite.service.GetActiveRateVersion(ctx)

	suite.Require().NoError(err)
	suite.Equal(&active, version)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateVersionServiceTestSuite) TestListRateVersions_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListRateVersions", ctx).Return(nil, nil).Once()

	versions, err := suite.service.ListRateVersions(ctx)

	suite.Require().NoError(err)
	suite.NotNil(versions)
	suite.Empty(versions)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestRateVersionService(t *testing.T) {
	suite.Run(t, new(RateVersionServiceTestSuite))
}
