package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/core/finance"
	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/core/services"
	"github.com/siamsail/charterdesk/internal/dto"
)

type CabinServiceTestSuite struct {
	suite.Suite
	mockCabinRepo   *MockCabinRepository
	mockBookingRepo *MockBookingRepository
	mockPayments    *MockPaymentLedger
	mockCurrencies  *MockCurrencyRepository
	service         portssvc.CabinSvcFacade
}

func (s *CabinServiceTestSuite) SetupTest() {
	s.mockCabinRepo = new(MockCabinRepository)
	s.mockBookingRepo = new(MockBookingRepository)
	s.mockPayments = new(MockPaymentLedger)
	s.mockCurrencies = new(MockCurrencyRepository)

	currencySvc := services.NewCurrencyService(s.mockCurrencies)
	s.service = services.NewCabinService(s.mockCabinRepo, s.mockBookingRepo, s.mockPayments, currencySvc)
}

func cabinCharterBooking(id string) *domain.Booking {
	b := &domain.Booking{BookingID: id, CharterType: domain.CharterCabin}
	b.Currency = "THB"
	return b
}

func (s *CabinServiceTestSuite) TestAddCabin_DerivesPriceAndCommission() {
	ctx := context.Background()
	req := dto.CreateCabinRequest{
		CabinName:  "Fore Deluxe",
		GuestName:  "J. Moreau",
		Currency:   "THB",
		CharterFee: dec("20000"),
		AdminFee:   dec("1500"),
		SourceType: domain.SourceDirect,
	}

	s.mockBookingRepo.On("FindBookingByID", ctx, "b1").Return(cabinCharterBooking("b1"), nil).Once()
	s.mockCurrencies.On("FindCurrencyByCode", ctx, "THB").Return(thbCurrency(), nil).Once()

	var saved domain.CabinAllocation
	s.mockCabinRepo.On("SaveCabin", ctx, mock.AnythingOfType("domain.CabinAllocation")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.CabinAllocation) }).
		Return(nil).Once()

	cabin, err := s.service.AddCabin(ctx, "b1", req, "ops")

	s.Require().NoError(err)
	// Cabin price is charter fee plus admin fee. Default cabin commission is
	// 2% of the THB charter fee.
	s.True(saved.TotalPrice.Equal(dec("21500")), "got %s", saved.TotalPrice)
	s.True(saved.TotalCommission.Value.Equal(dec("400")), "got %s", saved.TotalCommission.Value)
	s.Equal(domain.PaymentUnpaid, saved.PaymentStatus)
	s.Equal(cabin.CabinID, saved.CabinID)
	s.Equal("ops", saved.CreatedBy)
}

func (s *CabinServiceTestSuite) TestAddCabin_RejectsNonCabinCharterParent() {
	ctx := context.Background()
	parent := cabinCharterBooking("b1")
	parent.CharterType = domain.CharterCrewed
	s.mockBookingRepo.On("FindBookingByID", ctx, "b1").Return(parent, nil).Once()

	_, err := s.service.AddCabin(ctx, "b1", dto.CreateCabinRequest{
		Currency: "THB", CharterFee: dec("100"),
	}, "ops")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCabinRepo.AssertNotCalled(s.T(), "SaveCabin", mock.Anything, mock.Anything)
}

func (s *CabinServiceTestSuite) TestApplyFinanceEdit_AgencyEditOnDirectCabinRejected() {
	ctx := context.Background()
	cabin := &domain.CabinAllocation{CabinID: "c1", BookingID: "b1"}
	cabin.Currency = "THB"
	cabin.SourceType = domain.SourceDirect
	s.mockCabinRepo.On("FindCabinByID", ctx, "c1").Return(cabin, nil).Once()

	rate := dec("10")
	_, err := s.service.ApplyFinanceEdit(ctx, "c1", finance.Edit{AgencyCommissionRate: &rate}, "ops")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCabinRepo.AssertNotCalled(s.T(), "UpdateCabin", mock.Anything, mock.Anything)
}

func (s *CabinServiceTestSuite) TestApplyFinanceEdit_SourceSwitchAllowsAgencyRate() {
	ctx := context.Background()
	cabin := &domain.CabinAllocation{CabinID: "c1", BookingID: "b1"}
	cabin.Currency = "THB"
	cabin.CharterFee = dec("10000")
	cabin.SourceType = domain.SourceDirect
	s.mockCabinRepo.On("FindCabinByID", ctx, "c1").Return(cabin, nil).Once()
	s.mockPayments.On("ListPaymentsFor", ctx, "c1").Return(nil, nil).Once()

	var updated domain.CabinAllocation
	s.mockCabinRepo.On("UpdateCabin", ctx, mock.AnythingOfType("domain.CabinAllocation")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.CabinAllocation) }).
		Return(nil).Once()

	agencySource := domain.SourceAgency
	rate := dec("15")
	result, err := s.service.ApplyFinanceEdit(ctx, "c1", finance.Edit{
		SourceType:           &agencySource,
		AgencyCommissionRate: &rate,
	}, "ops")

	s.Require().NoError(err)
	s.Equal(domain.SourceAgency, result.SourceType)
	s.True(updated.AgencyCommissionAmount.Value.Equal(dec("1500")), "got %s", updated.AgencyCommissionAmount.Value)
	s.Equal("ops", updated.LastUpdatedBy)
}

func (s *CabinServiceTestSuite) TestApplyFinanceEdit_ReclassifiesFromLedger() {
	ctx := context.Background()
	cabin := &domain.CabinAllocation{CabinID: "c1", BookingID: "b1"}
	cabin.Currency = "THB"
	cabin.CharterFee = dec("1000")
	cabin.PaymentStatus = domain.PaymentUnpaid
	s.mockCabinRepo.On("FindCabinByID", ctx, "c1").Return(cabin, nil).Once()

	paid := domain.PaymentRecord{CabinID: "c1", Amount: dec("600")}
	now := paid.CreatedAt
	paid.PaidDate = &now
	s.mockPayments.On("ListPaymentsFor", ctx, "c1").Return([]domain.PaymentRecord{paid}, nil).Once()
	s.mockCabinRepo.On("UpdateCabin", ctx, mock.Anything).Return(nil).Once()

	fee := dec("2000")
	result, err := s.service.ApplyFinanceEdit(ctx, "c1", finance.Edit{CharterFee: &fee}, "ops")

	s.Require().NoError(err)
	s.Equal("2000", result.TotalPrice.String())
	s.Equal(domain.PaymentPartial, result.PaymentStatus)
}

func (s *CabinServiceTestSuite) TestRemoveCabin_NotFound() {
	ctx := context.Background()
	s.mockCabinRepo.On("DeleteCabin", ctx, "ghost", "ops", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := s.service.RemoveCabin(ctx, "ghost", "ops")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCabinServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CabinServiceTestSuite))
}
