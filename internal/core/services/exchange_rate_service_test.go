package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/platform/cache"
	"github.com/mocustoms/railway-ledger/pkg/config"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo    *MockExchangeRateRepository
	mockCurrencySvc *MockCurrencyService
	service         portssvc.ExchangeRateSvcFacade
	usd             domain.Currency
	mmk             domain.Currency
	userID          string
}

func (suite *ExchangeRateServiceTestSuite) newService(policy config.LookupPolicy) portssvc.ExchangeRateSvcFacade {
	ratesCache := cache.NewReference[[]domain.ExchangeRate](8, time.Minute)
	return services.NewExchangeRateService(suite.mockRateRepo, suite.mockCurrencySvc, ratesCache, policy)
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = suite.newService(config.LookupFallback)

	suite.userID = uuid.NewString()
	suite.mmk = domain.Currency{CurrencyID: uuid.NewString(), Code: "MMK", IsDefault: true, IsActive: true}
	suite.usd = domain.Currency{CurrencyID: uuid.NewString(), Code: "USD", IsActive: true}
}

func (suite *ExchangeRateServiceTestSuite) TestResolveToDefault_DefaultCurrencyIsIdentity() {
	suite.mockCurrencySvc.On("GetDefaultCurrency", mock.Anything).Return(&suite.mmk, nil)
	suite.mockRateRepo.On("ListActiveExchangeRates", mock.Anything).Return([]domain.ExchangeRate{}, nil)

	res, err := suite.service.ResolveToDefault(context.Background(), suite.mmk.CurrencyID)

	suite.Require().NoError(err)
	suite.True(res.Rate.Equal(decimal.NewFromInt(1)))
	suite.Empty(res.RateID)
	suite.False(res.Fallback)
}

func (suite *ExchangeRateServiceTestSuite) TestResolveToDefault_ExactPair() {
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		FromCurrencyID: suite.usd.CurrencyID,
		ToCurrencyID:   suite.mmk.CurrencyID,
		Rate:           decimal.NewFromInt(2500),
		IsActive:       true,
	}
	suite.mockCurrencySvc.On("GetDefaultCurrency", mock.Anything).Return(&suite.mmk, nil)
	suite.mockRateRepo.On("ListActiveExchangeRates", mock.Anything).Return([]domain.ExchangeRate{rate}, nil)

	res, err := suite.service.ResolveToDefault(context.Background(), suite.usd.CurrencyID)

	suite.Require().NoError(err)
	suite.True(res.Rate.Equal(decimal.NewFromInt(2500)))
	suite.Equal(rate.ExchangeRateID, res.RateID)
	suite.False(res.Fallback)
}

func (suite *ExchangeRateServiceTestSuite) TestResolveToDefault_FallbackPolicy() {
	suite.mockCurrencySvc.On("GetDefaultCurrency", mock.Anything).Return(&suite.mmk, nil)
	suite.mockRateRepo.On("ListActiveExchangeRates", mock.Anything).Return([]domain.ExchangeRate{}, nil)

	res, err := suite.service.ResolveToDefault(context.Background(), suite.usd.CurrencyID)

	suite.Require().NoError(err)
	suite.True(res.Rate.Equal(decimal.NewFromInt(1)))
	suite.True(res.Fallback)
}

func (suite *ExchangeRateServiceTestSuite) TestResolveToDefault_BlockPolicy() {
	blockSvc := suite.newService(config.LookupBlock)
	suite.mockCurrencySvc.On("GetDefaultCurrency", mock.Anything).Return(&suite.mmk, nil)
	suite.mockRateRepo.On("ListActiveExchangeRates", mock.Anything).Return([]domain.ExchangeRate{}, nil)

	_, err := blockSvc.ResolveToDefault(context.Background(), suite.usd.CurrencyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (suite *ExchangeRateServiceTestSuite) TestResolveToDefault_NoDefaultCurrency() {
	suite.mockCurrencySvc.On("GetDefaultCurrency", mock.Anything).Return(nil, apperrors.ErrNotFound)

	res, err := suite.service.ResolveToDefault(context.Background(), suite.usd.CurrencyID)

	suite.Require().NoError(err)
	suite.True(res.Rate.Equal(decimal.NewFromInt(1)))
	suite.False(res.Fallback)
}

func (suite *ExchangeRateServiceTestSuite) TestResolveToDefault_CachesRateList() {
	suite.mockCurrencySvc.On("GetDefaultCurrency", mock.Anything).Return(&suite.mmk, nil)
	suite.mockRateRepo.On("ListActiveExchangeRates", mock.Anything).Return([]domain.ExchangeRate{}, nil).Once()

	_, err := suite.service.ResolveToDefault(context.Background(), suite.usd.CurrencyID)
	suite.Require().NoError(err)
	_, err = suite.service.ResolveToDefault(context.Background(), suite.usd.CurrencyID)
	suite.Require().NoError(err)

	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "ListActiveExchangeRates", 1)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SamePair() {
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: suite.usd.CurrencyID,
		ToCurrencyID:   suite.usd.CurrencyID,
		Rate:           decimal.NewFromInt(2),
		DateEffective:  time.Now(),
	}

	_, err := suite.service.CreateExchangeRate(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_NonPositiveRate() {
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: suite.usd.CurrencyID,
		ToCurrencyID:   suite.mmk.CurrencyID,
		Rate:           decimal.Zero,
		DateEffective:  time.Now(),
	}

	_, err := suite.service.CreateExchangeRate(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
